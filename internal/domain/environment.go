package domain

// Vars is a plain key/value view used for template rendering.
type Vars map[string]string

// Env is the parsed content of an environment file.
// Keys keep the position of their first occurrence; later assignments
// replace the value only.
type Env struct {
	keys   []string
	values map[string]string
}

// NewEnv returns an empty Env.
func NewEnv() *Env {
	return &Env{values: map[string]string{}}
}

// Set assigns value to key.
func (e *Env) Set(key, value string) {
	if e.values == nil {
		e.values = map[string]string{}
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns a value for the given key and a boolean indicating if it exists.
func (e *Env) Get(key string) (string, bool) {
	if e == nil || e.values == nil {
		return "", false
	}
	v, ok := e.values[key]
	return v, ok
}

// Value returns the value for key, or "" when absent.
func (e *Env) Value(key string) string {
	v, _ := e.Get(key)
	return v
}

// Keys returns keys in insertion order.
func (e *Env) Keys() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.keys)
}

// Vars returns a copy of the values as a map.
func (e *Env) Vars() Vars {
	out := Vars{}
	if e == nil {
		return out
	}
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy.
func (e *Env) Clone() *Env {
	out := NewEnv()
	if e == nil {
		return out
	}
	for _, k := range e.keys {
		out.Set(k, e.values[k])
	}
	return out
}
