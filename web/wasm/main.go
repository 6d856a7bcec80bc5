//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/cwbudde/tidaw/dsp/node"
	"github.com/cwbudde/tidaw/engine"
)

var (
	engines = map[int]*engine.Engine{}
	nextID  = 1
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	// construct(sampleRate, bufferSize[, chainJSON]) returns a numeric handle
	// or an error string.
	api.Set("construct", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "construct: expected sampleRate and bufferSize"
		}

		var opts []engine.Option
		opts = append(opts, engine.WithNotifier(alert))
		if len(args) > 2 && args[2].Type() == js.TypeString {
			stages, err := node.ParseChain(args[2].String())
			if err != nil {
				return err.Error()
			}
			if len(stages) > 0 {
				opts = append(opts, engine.WithChain(stages...))
			}
		}

		e, err := engine.New(args[0].Float(), args[1].Int(), opts...)
		if err != nil {
			return err.Error()
		}

		id := nextID
		nextID++
		engines[id] = e
		return id
	}))

	api.Set("release", export(func(args []js.Value) any {
		if len(args) > 0 {
			delete(engines, args[0].Int())
		}
		return js.Null()
	}))

	api.Set("process", export(func(args []js.Value) any {
		e := lookup(args)
		if e == nil || len(args) < 2 {
			return newFloat32Array(nil)
		}

		input := args[1]
		buf := make([]float32, input.Length())
		for i := range buf {
			buf[i] = float32(input.Index(i).Float())
		}
		return newFloat32Array(e.Process(buf))
	}))

	api.Set("generate", export(func(args []js.Value) any {
		e := lookup(args)
		if e == nil || len(args) < 3 {
			return "generate: expected handle, frequency and duration"
		}

		out, err := e.Generate(engine.OscillatorParams{
			Frequency: args[1].Float(),
			Duration:  args[2].Float(),
		})
		if err != nil {
			return err.Error()
		}
		return newFloat32Array(out)
	}))

	api.Set("getSampleRate", export(func(args []js.Value) any {
		if e := lookup(args); e != nil {
			return e.SampleRate()
		}
		return js.Null()
	}))

	api.Set("getBufferSize", export(func(args []js.Value) any {
		if e := lookup(args); e != nil {
			return e.BufferSize()
		}
		return js.Null()
	}))

	api.Set("greet", export(func(args []js.Value) any {
		e := lookup(args)
		if e == nil || len(args) < 2 {
			return js.Null()
		}
		e.Greet(args[1].String())
		return js.Null()
	}))

	js.Global().Set("TidawEngine", api)
	select {}
}

func lookup(args []js.Value) *engine.Engine {
	if len(args) < 1 || args[0].Type() != js.TypeNumber {
		return nil
	}
	return engines[args[0].Int()]
}

func alert(message string) {
	js.Global().Call("alert", message)
}

func newFloat32Array(samples []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(samples))
	for i, v := range samples {
		arr.SetIndex(i, v)
	}
	return arr
}

// export wraps fn as a JS function. A panic inside fn is reported on the
// console and turned into an error string instead of killing the runtime.
func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) (result any) {
		defer func() {
			if r := recover(); r != nil {
				msg := fmt.Sprintf("tidaw: panic: %v", r)
				js.Global().Get("console").Call("error", msg)
				result = msg
			}
		}()
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
