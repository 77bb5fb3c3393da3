package simplex

// arc is one directed edge of the transportation graph: either a point-arc
// (p_i, c_j) or a sink-arc (c_j, s).
type arc struct {
	from, to int
	cap      int
	flow     int
	cost     float64
	inTree   bool
}

// Options configures a Solver's Build and Simplex behavior.
type Options struct {
	// Epsilon is the reduced-cost tolerance below which a candidate arc is
	// considered improving. Zero selects the default (1e-6).
	Epsilon float64
	// Verbose, when true, prints one line per accepted pivot to stdout.
	// There is no structured logging framework in this module; this mirrors
	// the plain Printf-gated verbosity convention used elsewhere in the
	// ambient stack.
	Verbose bool
}

const defaultEpsilon = 1e-6

func (o Options) epsilon() float64 {
	if o.Epsilon > 0 {
		return o.Epsilon
	}
	return defaultEpsilon
}
