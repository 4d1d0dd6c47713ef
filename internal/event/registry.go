package event

// registry maps namespace -> event value -> ordered callback sequence.
//
// Namespaces and the events inside each namespace remember their insertion
// order. After any removal, prune restores the invariant that the table holds
// no empty sequences and no empty namespaces.
//
// registry is not safe for concurrent use; the Emitter guards it.
type registry[C any] struct {
	order      []string
	namespaces map[string]*namespaceEntry[C]
}

// namespaceEntry holds the events registered in one namespace.
type namespaceEntry[C any] struct {
	order  []string
	events map[string][]C
}

// newRegistry creates an empty registry.
func newRegistry[C any]() *registry[C] {
	return &registry[C]{
		namespaces: make(map[string]*namespaceEntry[C]),
	}
}

// add appends cb to the sequence for (ns, value), creating containers as needed.
func (r *registry[C]) add(ns, value string, cb C) {
	entry, ok := r.namespaces[ns]
	if !ok {
		entry = &namespaceEntry[C]{events: make(map[string][]C)}
		r.namespaces[ns] = entry
		r.order = append(r.order, ns)
	}

	if _, ok := entry.events[value]; !ok {
		entry.order = append(entry.order, value)
	}
	entry.events[value] = append(entry.events[value], cb)
}

// removeEvent drops the sequence for (ns, value).
// Returns true if it existed.
func (r *registry[C]) removeEvent(ns, value string) bool {
	entry, ok := r.namespaces[ns]
	if !ok {
		return false
	}
	if _, ok := entry.events[value]; !ok {
		return false
	}

	// Leave an empty sequence for prune to collect
	entry.events[value] = nil
	return true
}

// removeEventEverywhere drops value from every namespace.
// Returns the number of namespaces it was removed from.
func (r *registry[C]) removeEventEverywhere(value string) int {
	removed := 0
	for _, ns := range r.order {
		if r.removeEvent(ns, value) {
			removed++
		}
	}
	return removed
}

// removeNamespace drops a namespace and all its events.
// Returns true if it existed.
func (r *registry[C]) removeNamespace(ns string) bool {
	entry, ok := r.namespaces[ns]
	if !ok {
		return false
	}

	for value := range entry.events {
		entry.events[value] = nil
	}
	return true
}

// prune deletes empty sequences and empty namespaces.
// Returns the number of keys removed (events plus namespaces).
func (r *registry[C]) prune() int {
	removed := 0
	keptNamespaces := r.order[:0]

	for _, ns := range r.order {
		entry := r.namespaces[ns]

		keptEvents := entry.order[:0]
		for _, value := range entry.order {
			if len(entry.events[value]) == 0 {
				delete(entry.events, value)
				removed++
				continue
			}
			keptEvents = append(keptEvents, value)
		}
		entry.order = keptEvents

		if len(entry.events) == 0 {
			delete(r.namespaces, ns)
			removed++
			continue
		}
		keptNamespaces = append(keptNamespaces, ns)
	}

	r.order = keptNamespaces
	return removed
}

// snapshot returns a copy of the sequence for (ns, value).
// Returns nil if the pair is not registered.
func (r *registry[C]) snapshot(ns, value string) []C {
	entry, ok := r.namespaces[ns]
	if !ok {
		return nil
	}

	cbs := entry.events[value]
	if len(cbs) == 0 {
		return nil
	}

	result := make([]C, len(cbs))
	copy(result, cbs)
	return result
}

// hasNamespace returns true if ns is present.
func (r *registry[C]) hasNamespace(ns string) bool {
	_, ok := r.namespaces[ns]
	return ok
}

// namespaceOrder returns a copy of the namespaces in insertion order.
func (r *registry[C]) namespaceOrder() []string {
	if len(r.order) == 0 {
		return nil
	}
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// eventOrder returns a copy of the event values of ns in insertion order.
func (r *registry[C]) eventOrder(ns string) []string {
	entry, ok := r.namespaces[ns]
	if !ok || len(entry.order) == 0 {
		return nil
	}
	result := make([]string, len(entry.order))
	copy(result, entry.order)
	return result
}

// count returns the number of callbacks registered for (ns, value).
func (r *registry[C]) count(ns, value string) int {
	entry, ok := r.namespaces[ns]
	if !ok {
		return 0
	}
	return len(entry.events[value])
}

// size returns the total number of registered callbacks.
func (r *registry[C]) size() int {
	total := 0
	for _, entry := range r.namespaces {
		for _, cbs := range entry.events {
			total += len(cbs)
		}
	}
	return total
}

// reset removes everything.
func (r *registry[C]) reset() {
	r.order = nil
	r.namespaces = make(map[string]*namespaceEntry[C])
}
