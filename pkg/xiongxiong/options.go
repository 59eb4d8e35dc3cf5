package xiongxiong

import "time"

// DefaultLifetime is the token lifetime used by an Issuer without WithLifetime.
const DefaultLifetime = time.Hour

// Option configures a Verifier or an Issuer.
type Option func(*options)

type options struct {
	algorithm Algorithm
	lifetime  time.Duration
	clock     func() time.Time
}

func defaultOptions() *options {
	return &options{
		algorithm: DefaultAlgorithm,
		lifetime:  DefaultLifetime,
		clock:     time.Now,
	}
}

// WithAlgorithm selects the HMAC hash function. Unsupported values make
// the constructor fail with ErrUnsupportedAlgorithm.
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) { o.algorithm = alg }
}

// WithLifetime sets how long issued tokens stay valid. Only whole seconds
// are kept. It has no effect on a Verifier.
func WithLifetime(d time.Duration) Option {
	return func(o *options) { o.lifetime = d.Truncate(time.Second) }
}

// WithClock replaces the wall clock. Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
