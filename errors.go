package mintcrate

import "fmt"

// UndefinedDefinitionError reports a reference to an entity or font
// definition name that was never registered with the Library. This is a
// setup mistake, not a runtime condition; fix the definition table.
type UndefinedDefinitionError struct {
	Kind string // "active", "backdrop", "font"
	Name string
}

func (e *UndefinedDefinitionError) Error() string {
	return fmt.Sprintf("mintcrate: no %s definition named %q", e.Kind, e.Name)
}

// UnknownAnimationError reports a PlayAnimation call naming an animation
// that is not present in the Active's definition.
type UnknownAnimationError struct {
	Definition string
	Animation  string
}

func (e *UnknownAnimationError) Error() string {
	return fmt.Sprintf("mintcrate: active %q has no animation named %q",
		e.Definition, e.Animation)
}

// InvalidStateError reports an operation through an entity handle that has
// already been destroyed. The one exception is a second Destroy, which is
// an idempotent no-op.
type InvalidStateError struct {
	Op string
	ID uint32
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("mintcrate: %s on destroyed entity (ID was %d)", e.Op, e.ID)
}
