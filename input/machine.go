package input

import "github.com/gdamore/tcell/v2"

// Machine feeds the keyboard and translates discrete events into intents
type Machine struct {
	table    *KeyTable
	keyboard *Keyboard
}

// NewMachine creates a machine over table and keyboard
func NewMachine(table *KeyTable, keyboard *Keyboard) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table, keyboard: keyboard}
}

// Table returns the bindings
func (m *Machine) Table() *KeyTable {
	return m.table
}

// Keyboard returns the held-key tracker
func (m *Machine) Keyboard() *Keyboard {
	return m.keyboard
}

// Process handles one terminal event; unmapped keys yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := KeyOf(ev)
		// Only the latest key auto-repeats, so a reverse pan ends the previous one
		for _, o := range m.table.Opposite(key) {
			m.keyboard.Release(o)
		}
		m.keyboard.Press(key)
		return Intent{Type: m.table.Intents[key]}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
