package main

import (
	"strings"

	"github.com/aocsolve/aoc"
)

/*
want=8

you: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
*/
func (s solver) D11p1() any {
	return parseDevices(s.Lines()).NumPaths("you", "out")
}

/*
want=2

svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
*/
func (s solver) D11p2() any {
	g := parseDevices(s.Lines())
	seen := g.ReachableNodes("svr")
	for _, n := range []string{"dac", "fft", "out"} {
		if !seen[n] {
			s.Debugf("%s is not reachable from svr", n)
			return 0
		}
	}
	return g.NumPathsVia("svr", "out", "dac", "fft")
}

// parseDevices reads "name: out1 out2 ..." lines into a graph with an arc
// from each device to each of its outputs. Lines without a colon are
// ignored.
func parseDevices(lines []string) *aoc.Graph[string] {
	g := &aoc.Graph[string]{}
	for _, l := range lines {
		name, outs, ok := strings.Cut(l, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		g.AddNode(name)
		for _, o := range strings.Fields(outs) {
			g.AddArc(name, o, 1)
		}
	}
	return g
}
