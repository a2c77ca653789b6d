package format

import "sync"

// Table is a concurrency-safe cache of compiled patterns: spec §4.1's
// "Precompilation contract" says a pattern string is compiled once and
// reused across every value formatted with it. Its zero value is ready to
// use.
type Table struct {
    mu    sync.RWMutex
    metas map[string]*FormatMeta
}

// Compile returns the [FormatMeta] for pattern, compiling and caching it on
// first use.
func (t *Table) Compile(pattern string) (*FormatMeta, error) {
    t.mu.RLock()
    meta, ok := t.metas[pattern]
    t.mu.RUnlock()
    if ok {
        return meta, nil
    }

    meta, err := Compile(pattern)
    if err != nil {
        return nil, err
    }

    t.mu.Lock()
    if t.metas == nil {
        t.metas = make(map[string]*FormatMeta)
    }
    // Another goroutine may have compiled and stored the same pattern while
    // this one held no lock; last writer wins, harmlessly, since both
    // compiles produce an equal result.
    t.metas[pattern] = meta
    t.mu.Unlock()

    return meta, nil
}
