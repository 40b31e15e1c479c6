package tilemapping

import "github.com/samber/lo"

const (
	// InitialGridLetters is the number of letters placed on the grid when
	// a game starts.
	InitialGridLetters = 8
	// TripletCount is the number of triplets dropped during a game, at most.
	TripletCount = 64
	// PoolSize is the number of letters of a full pool. The repartitions of
	// a distribution must add up to it.
	PoolSize = InitialGridLetters + 3*TripletCount
)

// A Triplet is a group of three letters that fall on the grid together.
type Triplet [3]MachineLetter

// Shuffler is a source of uniform permutations. frand.RNG and
// math/rand.Rand both implement it with a Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// LettersPool is the outcome of a pool draw: the letters of the initial
// grid and the ordered triplets that follow.
type LettersPool struct {
	InitialSelection []MachineLetter
	Triplets         []Triplet
}

// GeneratePool expands the distribution into its PoolSize letters, shuffles
// them with rng, and splits the result into the initial selection and
// consecutive triplets. Only rng decides the order, so the same generator
// state always yields the same pool.
func (ld *LetterDistribution) GeneratePool(rng Shuffler) *LettersPool {
	all := make([]MachineLetter, 0, ld.numLetters)
	for idx, lc := range ld.letters {
		for i := 0; i < lc.Repartition; i++ {
			all = append(all, MachineLetter(idx))
		}
	}
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	initial := append([]MachineLetter(nil), all[:InitialGridLetters]...)
	triplets := lo.FilterMap(lo.Chunk(all[InitialGridLetters:], 3),
		func(chunk []MachineLetter, _ int) (Triplet, bool) {
			if len(chunk) != 3 {
				return Triplet{}, false
			}
			return Triplet{chunk[0], chunk[1], chunk[2]}, true
		})
	if len(triplets) > TripletCount {
		triplets = triplets[:TripletCount]
	}

	return &LettersPool{
		InitialSelection: initial,
		Triplets:         triplets,
	}
}
