package engine

import (
	"fmt"
	"strings"
)

// Tag is the category an entity belongs to; it only drives partition and collision policy
type Tag uint8

const (
	TagObject Tag = iota
	TagFloor
	TagWall
	TagCube
	TagSoundCube

	tagCount
)

var tagNames = [tagCount]string{
	TagObject:    "Object",
	TagFloor:     "Floor",
	TagWall:      "Wall",
	TagCube:      "Cube",
	TagSoundCube: "SoundCube",
}

// Tags lists every tag in declaration order
func Tags() []Tag {
	out := make([]Tag, tagCount)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// IsBoundary reports whether entities with this tag are immovable and shared by every quadrant
func (t Tag) IsBoundary() bool {
	return t == TagFloor || t == TagWall
}

// ParseTag resolves a tag name, case-insensitively
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if strings.EqualFold(name, s) {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// MarshalText lets tags appear as map keys and scalars in config files
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (t *Tag) UnmarshalText(b []byte) error {
	v, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
