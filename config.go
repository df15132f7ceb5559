// Copyright 2020 Aleksandr Demakin. All rights reserved.

package animnum

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/avdva/animnum/diff"
	"github.com/avdva/animnum/numfmt"
	"github.com/avdva/animnum/segment"
)

var (
	// ErrInvalidConfig is returned by New for configs that fail validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidValue is returned by Update for values that are not finite numbers.
	ErrInvalidValue = numfmt.ErrInvalidValue
)

// Animation controls how value changes are transitioned.
type Animation struct {
	Kind diff.Animation
	// Duration of a single character transition, in seconds.
	Duration float64
	// Step is the cascade delay between neighbouring characters, in seconds.
	Step float64
	// Prefix and Suffix are drawn around the number without animation.
	Prefix, Suffix string
	// FontSizes override the font size of segments. Missing kinds inherit the host font size.
	FontSizes map[segment.Kind]float64
}

// Config is the configuration of a Display.
type Config struct {
	Format    numfmt.Options
	Animation Animation
	// Clock returns the current time. time.Now is used if nil.
	Clock func() time.Time
}

// DefaultConfig returns en-US standard formatting with a slide animation.
func DefaultConfig() Config {
	return Config{
		Format: numfmt.DefaultOptions(),
		Animation: Animation{
			Kind:     diff.AnimationSlide,
			Duration: 0.3,
			Step:     0.05,
		},
	}
}

// Validate checks the config.
func (c Config) Validate() error {
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	a := c.Animation
	if a.Kind < diff.AnimationNone || a.Kind > diff.AnimationFade {
		return fmt.Errorf("%w: invalid animation %d", ErrInvalidConfig, int(a.Kind))
	}
	if !validSeconds(a.Duration) {
		return fmt.Errorf("%w: invalid duration %v", ErrInvalidConfig, a.Duration)
	}
	if !validSeconds(a.Step) {
		return fmt.Errorf("%w: invalid cascade step %v", ErrInvalidConfig, a.Step)
	}
	for k, size := range a.FontSizes {
		if k < segment.KindSymbol || k > segment.KindSuffix {
			return fmt.Errorf("%w: font size for unknown segment %v", ErrInvalidConfig, k)
		}
		if !(size > 0) || math.IsInf(size, 0) {
			return fmt.Errorf("%w: invalid font size %v for %v", ErrInvalidConfig, size, k)
		}
	}
	return nil
}

func validSeconds(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}
