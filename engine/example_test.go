package engine_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/tidaw/engine"
)

func ExampleNew() {
	e, err := engine.New(44100, 512)
	if err != nil {
		panic(err)
	}

	fmt.Println(e.SampleRate(), e.BufferSize())

	_, err = engine.New(0, 512)
	fmt.Println(errors.Is(err, engine.ErrInvalidConfig))

	// Output:
	// 44100 512
	// true
}

func ExampleEngine_Generate() {
	e, err := engine.New(44100, 512)
	if err != nil {
		panic(err)
	}

	tone, err := e.Generate(engine.OscillatorParams{Frequency: 440, Duration: 0.5})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(tone))

	_, err = e.Generate(engine.OscillatorParams{Frequency: -440, Duration: 0.5})
	fmt.Println(err)

	// Output:
	// 22050
	// invalid config: frequency must be finite and >= 0: -440
}

func ExampleWithNotifier() {
	e, err := engine.New(44100, 512, engine.WithNotifier(func(msg string) {
		fmt.Println("notice:", msg)
	}))
	if err != nil {
		panic(err)
	}

	e.Greet("TIDAW DAW")

	// Output:
	// notice: Hello, TIDAW DAW!
}
