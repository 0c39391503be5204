package util

import "math/rand"

const Alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FillAlnum overwrites every byte of dst with a random alphanumeric char.
func FillAlnum(r *rand.Rand, dst []byte) {
	for i := range dst {
		dst[i] = Alnum[r.Intn(len(Alnum))]
	}
}

func AlnumString(r *rand.Rand, l int) string {
	b := make([]byte, l)
	FillAlnum(r, b)
	return string(b)
}
