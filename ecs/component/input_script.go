package component

// InputScript drives the entity's Input from a tengo script instead of the
// keyboard.
type InputScript struct {
	Path string
}

var InputScriptComponent = NewComponent[InputScript]()
