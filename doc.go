// SPDX-License-Identifier: EPL-2.0

// Package retrosfx synthesizes retro 8-bit style sound effects from
// scratch and exports them as 16-bit mono PCM WAV files.
//
// The engine is a set of composable buffer transforms: oscillators
// generate raw waveforms, envelopes shape loudness over time, effects
// process the signal, the mixer layers independent strands and the
// exporter persists the result. Nothing is streamed; every stage
// consumes and returns a fully materialized in-memory buffer.
//
// # Quick Start
//
// The simplest way to produce a sound is through a recipe:
//
//	cfg, _ := config.Load("")
//	exp := export.New(cfg.OutputDir)
//
//	sound, _ := recipes.Find("weapons")
//	paths, err := retrosfx.GenerateCategory(sound, cfg.SampleRate, exp)
//
// # Building Sounds by Hand
//
// For full control, call the engine packages directly:
//
//	buf := synth.Square(440, 0.3, 22050)
//	buf = synth.Percussive(buf, 0.01, 0.4)
//	buf = effects.Bitcrush(buf, 5)
//	buf = mix.Normalize(buf, -3)
//	path, err := exp.Export(buf, "blip", 22050)
//
// Multiple strands mix with explicit or equal weights:
//
//	mixed, err := mix.Layers([]synth.Buffer{base, harmony}, []float64{0.7, 0.3})
//
// # Importing Recorded Material
//
// Existing audio files can join a mix as ordinary layers. LoadSample
// decodes WAV, MP3, Ogg Vorbis or AIFF by file extension, downmixes to
// mono and resamples to the engine rate:
//
//	sample, err := retrosfx.LoadSample("thunder.ogg", cfg.SampleRate)
//
// # Concurrency
//
// The engine is purely computational; generation calls share no state
// beyond the output directory tree, whose creation is idempotent.
// Generating independent sounds concurrently is safe.
package retrosfx
