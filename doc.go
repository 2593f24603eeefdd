// Package spinmix estimates mixing times of Ising-type spin chains by coupling.
//
// Two copies of a single-site Markov chain are started from the extreme
// configurations, X all up and Y all down, and advanced on shared randomness
// (same site, same candidate spin, same uniform draw) until they agree at
// every site. The number of steps this takes is one sample of the mixing
// time; repeating it across a parameter range traces how mixing slows down
// near a phase transition.
//
// Packages:
//
//	spin/       ±1 spin labels and State with an O(1) up-count
//	lattice/    Torus(n) (4-neighbour, periodic) and Complete(n) topologies
//	dynamics/   heat-bath, Metropolis and edge-counting Metropolis rules
//	coupling/   Engine: the coalescence loop with an O(1) difference counter
//	model/      named (topology, rule, default range) experiments
//	sweep/      Controller: parameter sweeps, optional parallel trials
//	record/     result records, text and SQLite sinks, readers, summaries
//	cmd/spinmix the command-line front end
//
// Quick example (one trial on a 16×16 torus at β = 0.3):
//
//	tor, _ := lattice.Torus(16)
//	eng, _ := coupling.NewEngine(tor, dynamics.HeatBath{}, coupling.WithSeed(1))
//	res, _ := eng.Run(context.Background(), 0.3)
//	fmt.Println(res.Steps, res.Duration)
//
// Sweeps stream every finished trial to a record.Sink as
// "<param>, <iterations>, <seconds>" lines; see package record.
package spinmix
