//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/fftscope/dsp/fft"
	"github.com/cwbudde/fftscope/dsp/processor"
	"github.com/cwbudde/fftscope/internal/diag"
)

var funcs []js.Func

func main() {
	console := js.Global().Get("console")
	diag.Install(func(msg string) {
		console.Call("error", msg)
	})

	api := js.Global().Get("Object").New()
	api.Set("fft", export("fft", func(args []js.Value) any {
		if len(args) < 1 {
			return toFloat64Array(nil)
		}
		samples := fromArray(args[0])
		return toFloat64Array(diag.Guard("fft", func() []float64 {
			return fft.Magnitude(samples)
		}))
	}))

	api.Set("fftWith", export("fftWith", func(args []js.Value) any {
		if len(args) < 2 {
			return toFloat64Array(nil)
		}
		process, err := processor.Lookup(args[0].String())
		if err != nil {
			return err.Error()
		}
		samples := fromArray(args[1])
		return toFloat64Array(diag.Guard("fftWith", func() []float64 {
			return process(samples)
		}))
	}))

	api.Set("processors", export("processors", func([]js.Value) any {
		names := processor.Names()
		arr := js.Global().Get("Array").New(len(names))
		for i, name := range names {
			arr.SetIndex(i, name)
		}
		return arr
	}))

	api.Set("label", export("label", func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		return processor.Label(args[0].String())
	}))

	js.Global().Set("FFTScope", api)
	select {}
}

// export wraps fn as a JS function. Panics outside the guarded transform
// calls are reported the same way and yield null.
func export(name string, fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		res := diag.Guard(name, func() any { return fn(args) })
		if res == nil {
			return js.Null()
		}
		return res
	})
	funcs = append(funcs, f)
	return f
}

// fromArray reads a JS Array or typed array of numbers.
func fromArray(v js.Value) []float64 {
	n := v.Length()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.Index(i).Float()
	}
	return out
}

func toFloat64Array(values []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, v)
	}
	return arr
}
