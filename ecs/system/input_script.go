package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/prefabs"
	"github.com/sirupsen/logrus"
)

// ScriptedInputSystem fills Input components from tengo scripts. A script
// defines tick(engine, frame); engine exposes move(x, y), attack(), dash(),
// interact() and menu(), each producing the same state a device would.
type ScriptedInputSystem struct {
	binder   *LocomotionBinder
	log      logrus.FieldLogger
	frame    int64
	runtimes map[ecs.Entity]*inputScriptRuntime
}

type inputScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

const inputScriptDispatch = `
if __run {
	tick(__engine, __frame)
}
`

func NewScriptedInputSystem(binder *LocomotionBinder, log logrus.FieldLogger) *ScriptedInputSystem {
	log = logger.Or(log)
	return &ScriptedInputSystem{
		binder:   binder,
		log:      log,
		runtimes: map[ecs.Entity]*inputScriptRuntime{},
	}
}

// Reload drops compiled scripts so the next step reads them again.
func (s *ScriptedInputSystem) Reload() {
	s.runtimes = map[ecs.Entity]*inputScriptRuntime{}
}

func (s *ScriptedInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputScriptComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, script *component.InputScript, input *component.Input) {
		rt, err := s.runtime(e, script.Path)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"entity": e, "file": script.Path}).Warn("input script: load failed")
			return
		}
		if rt.failed {
			return
		}
		if err := rt.tick(s.frame, input); err != nil {
			rt.failed = true
			s.log.WithError(err).WithFields(logrus.Fields{"entity": e, "file": script.Path}).Warn("input script: tick failed, script disabled")
		}
	})
	s.frame++

	dispatchInput(w, s.binder)
}

func (s *ScriptedInputSystem) runtime(e ecs.Entity, path string) (*inputScriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.path == path {
		return rt, nil
	}
	rt, err := compileInputScript(path)
	if err != nil {
		// Cache the failure so a broken script is reported once.
		s.runtimes[e] = &inputScriptRuntime{path: path, failed: true}
		return nil, err
	}
	s.runtimes[e] = rt
	return rt, nil
}

func compileInputScript(path string) (*inputScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}
	return compileInputSource(path, src)
}

func compileInputSource(path string, src []byte) (*inputScriptRuntime, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(inputScriptDispatch)...))
	_ = script.Add("__run", false)
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__frame", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	// Run once without ticking so top-level definitions are checked.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	if !compiled.IsDefined("tick") {
		return nil, fmt.Errorf("%s: tick is not defined", path)
	}
	return &inputScriptRuntime{path: path, compiled: compiled}, nil
}

// tick runs the script for one frame. Edges from the previous frame are
// cleared first; the move vector persists until the script changes it.
func (rt *inputScriptRuntime) tick(frame int64, input *component.Input) error {
	input.AttackPressed = false
	input.DashPressed = false
	input.MenuPressed = false
	input.InteractPressed = false

	if err := rt.compiled.Set("__run", true); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", inputScriptEngine(input)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__frame", frame); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func inputScriptEngine(input *component.Input) *tengo.ImmutableMap {
	pressed := func(name string, field *bool) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			*field = true
			return tengo.TrueValue, nil
		}}
	}

	values := map[string]tengo.Object{
		"move": &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, ok := tengo.ToFloat64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
			}
			y, ok := tengo.ToFloat64(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[1].TypeName()}
			}
			input.MoveX, input.MoveY = x, y
			return tengo.TrueValue, nil
		}},
		"attack":   pressed("attack", &input.AttackPressed),
		"dash":     pressed("dash", &input.DashPressed),
		"menu":     pressed("menu", &input.MenuPressed),
		"interact": pressed("interact", &input.InteractPressed),
	}
	return &tengo.ImmutableMap{Value: values}
}
