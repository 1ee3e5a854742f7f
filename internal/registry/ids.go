package registry

import "github.com/specialistvlad/seedgrid/internal/metrics"

// ID enumerates the known strategies.
type ID int

const (
	Deg ID = iota
	Btw
	Clu
	Clo
	Ksh
	DegP
	BtwP
	CluP
	CloP
	KshP
	DegDeg
	DegBtw
	DegClu
	DegClo
	DegKsh
	AltDeg1
	AltDeg2
	KShellSupport
	Alt2Ksh
	Alt2KshP
	Random

	idCount
)

// Family groups strategies that share a generation rule.
type Family int

const (
	PureMeasure Family = iota
	RandomizedMeasure
	FilteredMeasure
	Composite
)

func (f Family) String() string {
	switch f {
	case PureMeasure:
		return "measure"
	case RandomizedMeasure:
		return "randomized-measure"
	case FilteredMeasure:
		return "degree-filtered"
	default:
		return "composite"
	}
}

// measure ties a centrality kind to its flag letter and label stem.
type measure struct {
	flag  string
	label string
	kind  metrics.Kind
}

var measures = [...]measure{
	{flag: "d", label: "deg", kind: metrics.Degree},
	{flag: "b", label: "btw", kind: metrics.Betweenness},
	{flag: "c", label: "clu", kind: metrics.Clustering},
	{flag: "l", label: "clo", kind: metrics.Closeness},
	{flag: "k", label: "ksh", kind: metrics.CoreNumber},
}
