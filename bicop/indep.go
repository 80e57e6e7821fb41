package bicop

// indepEngine is the independence copula: C(u,v) = u*v.
type indepEngine struct{}

func (indepEngine) family() Family { return Indep }

func (indepEngine) pdf(u [2]float64, theta []float64) float64 { return 1 }

func (indepEngine) cdf(u [2]float64, theta []float64) float64 { return u[0] * u[1] }

func (indepEngine) h1(u [2]float64, theta []float64) float64 { return u[1] }

func (indepEngine) h2(u [2]float64, theta []float64) float64 { return u[0] }

func (indepEngine) hinv1(u1, q float64, theta []float64) float64 { return q }

func (indepEngine) hinv2(u1, q float64, theta []float64) float64 { return q }

func (indepEngine) bounds() (lower, upper []float64) { return nil, nil }

func (indepEngine) startingValues(tau float64) []float64 { return nil }

func (indepEngine) npars(theta []float64) float64 { return 0 }

func (indepEngine) tauToParameters(tau float64) ([]float64, error) { return nil, nil }

func (indepEngine) parametersToTau(theta []float64) (float64, error) { return 0, nil }
