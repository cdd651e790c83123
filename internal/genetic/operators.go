package genetic

import "math/rand"

// fillIdentity writes [0, 1, ..., n-1] into p.
func fillIdentity(p []int) {
	for i := range p {
		p[i] = i
	}
}

// tournamentSelect draws k distinct individuals from pop and returns
// the index of the cheapest one (first-seen on ties). idx must be a
// permutation of the population indices; the partial Fisher-Yates
// shuffle keeps it one, so the buffer can be reused across calls.
func tournamentSelect(pop []Individual, k int, rng *rand.Rand, idx []int) int {
	n := len(pop)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	winner := idx[0]
	for i := 1; i < k; i++ {
		if pop[idx[i]].Cost < pop[winner].Cost {
			winner = idx[i]
		}
	}
	return winner
}

// orderCrossover applies OX: a random slice [a,b) of p1 is copied into
// the child unchanged, and the remaining positions are filled with
// p2's genes in p2's order, walking both the source and the free slots
// from b with wrap-around. The result is always a valid permutation.
//
// mark and stamp are caller-owned scratch: mark[g] == *stamp means gene
// g is already placed, which avoids clearing a seen-set per call.
// Callers must ensure len(p1) >= 2 so two distinct cut points exist.
func orderCrossover(p1, p2, child []int, rng *rand.Rand, mark []int, stamp *int) {
	n := len(p1)

	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}
	if a > b {
		a, b = b, a
	}

	*stamp++
	cur := *stamp

	for i := range child {
		child[i] = -1
	}
	for i := a; i < b; i++ {
		gene := p1[i]
		child[i] = gene
		mark[gene] = cur
	}

	pos := b % n
	for i := 0; i < n; i++ {
		gene := p2[(b+i)%n]
		if mark[gene] == cur {
			continue
		}
		for child[pos] != -1 {
			pos = (pos + 1) % n
		}
		child[pos] = gene
		mark[gene] = cur
	}
}

// swapMutate exchanges each position, independently with probability
// rate, with a uniformly chosen position. A self-swap is a legal no-op.
func swapMutate(p []int, rate float64, rng *rand.Rand) {
	n := len(p)
	for i := 0; i < n; i++ {
		if rng.Float64() < rate {
			j := rng.Intn(n)
			p[i], p[j] = p[j], p[i]
		}
	}
}
