package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// RandomFloat returns a random float in [min, max) rounded to one decimal
func RandomFloat(min, max float64) float64 {
	v := min + Rand.Float64()*(max-min)
	return float64(int64(v*10)) / 10
}

// RandomPastTime returns a random time within the given duration before now
func RandomPastTime(within time.Duration) time.Time {
	return time.Now().Add(-time.Duration(Rand.Int63n(int64(within)))).UTC().Truncate(time.Millisecond)
}

// RandomFutureTime returns a random time within the given duration after now
func RandomFutureTime(within time.Duration) time.Time {
	return time.Now().Add(time.Minute + time.Duration(Rand.Int63n(int64(within)))).UTC().Truncate(time.Millisecond)
}
