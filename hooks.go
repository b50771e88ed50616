package localstorage

// ChangingEvent is passed to Hooks.Changing before a write. Setting Cancel
// skips the write; the write call then returns nil.
type ChangingEvent struct {
	Key string
	// OldValue is the previously stored text; HadOld is false when the key
	// was absent.
	OldValue string
	HadOld   bool
	// NewValue is the value given to SetItem (a string for SetItemAsString).
	NewValue any
	Cancel   bool
}

// ChangedEvent is passed to Hooks.Changed after a successful write.
type ChangedEvent struct {
	Key      string
	OldValue string
	HadOld   bool
	NewValue any
}

// Hooks are callbacks around writes made through the Service.
// Changing runs synchronously on the writer's goroutine; Changed should be
// cheap and non-blocking (see hooks/async).
type Hooks interface {
	Changing(e *ChangingEvent)
	Changed(e ChangedEvent)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Changing(*ChangingEvent) {}
func (NopHooks) Changed(ChangedEvent)    {}
