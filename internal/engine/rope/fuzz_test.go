package rope

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzFromString tests rope creation from arbitrary strings.
func FuzzFromString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("hello\nworld")
	f.Add("hello\r\nworld")
	f.Add("日本語")
	f.Add("emoji 🎉 test")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}

		r := FromString(s)
		defer r.Release()

		if r.Len() != utf8.RuneCountInString(s) {
			t.Errorf("length mismatch: got %d, want %d", r.Len(), utf8.RuneCountInString(s))
		}
		if r.String() != s {
			t.Errorf("content mismatch")
		}
		if err := Check(r); err != nil {
			t.Error(err)
		}
	})
}

// FuzzSplice replaces [i, j) with insert and checks the tree invariants.
func FuzzSplice(f *testing.F) {
	f.Add(strings.Repeat("abc\n", 100), 5, 300, "x")
	f.Add("hello", 5, 5, "x")
	f.Add("hello", 0, 2, "")
	f.Add("", 0, 0, strings.Repeat("test", 80))
	f.Add("日本語", 1, 2, "x")

	f.Fuzz(func(t *testing.T, initial string, i, j int, insert string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(insert) {
			return
		}
		runes := []rune(initial)
		i = max(0, min(i, len(runes)))
		j = max(i, min(j, len(runes)))

		r := FromString(initial)
		mid := FromString(insert)
		pre, suf := r.Prefix(i), r.Suffix(j)
		tail := mid.Append(suf)
		result := pre.Append(tail)
		defer func() {
			for _, x := range []*Rope{&r, &mid, &pre, &suf, &tail, &result} {
				x.Release()
			}
		}()

		expected := string(runes[:i]) + insert + string(runes[j:])
		if result.String() != expected {
			t.Errorf("splice [%d,%d) mismatch", i, j)
		}
		if err := Check(result); err != nil {
			t.Error(err)
		}
	})
}

// FuzzPointRoundTrip tests point/offset conversion.
func FuzzPointRoundTrip(f *testing.F) {
	f.Add("hello\nworld", 7)
	f.Add("line1\nline2\nline3", 12)
	f.Add("", 0)
	f.Add("\n\n\n", 2)

	f.Fuzz(func(t *testing.T, s string, offset int) {
		if !utf8.ValidString(s) {
			return
		}
		r := FromString(s)
		defer r.Release()
		offset = max(0, min(offset, r.Len()))

		p := r.IndexToPoint(offset)
		if back := r.PointToIndex(p); back != offset {
			t.Errorf("round trip failed: %d -> %v -> %d", offset, p, back)
		}
	})
}

// TestRandomEditChains applies long chains of random slices and appends to
// a rope and a plain rune slice side by side.
func TestRandomEditChains(t *testing.T) {
	before := DefaultPool.LiveNodes()
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdefgh \n\t世界")

	randomText := func(n int) []rune {
		out := make([]rune, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return out
	}

	for chain := 0; chain < 20; chain++ {
		model := randomText(rng.Intn(2000))
		r := FromRunes(model)

		for step := 0; step < 200; step++ {
			i := rng.Intn(len(model) + 1)
			j := i + rng.Intn(len(model)-i+1)
			var next Rope
			switch rng.Intn(4) {
			case 0: // insert
				ins := randomText(rng.Intn(300))
				mid := FromRunes(ins)
				pre, suf := r.Prefix(i), r.Suffix(i)
				tail := mid.Append(suf)
				next = pre.Append(tail)
				pre.Release()
				suf.Release()
				mid.Release()
				tail.Release()
				model = append(model[:i:i], append(ins, model[i:]...)...)
			case 1: // delete
				pre, suf := r.Prefix(i), r.Suffix(j)
				next = pre.Append(suf)
				pre.Release()
				suf.Release()
				model = append(model[:i:i], model[j:]...)
			case 2: // substring
				next = r.Substring(i, j)
				model = append([]rune(nil), model[i:j]...)
			default: // double up
				next = r.Append(r)
				model = append(model[:len(model):len(model)], model...)
				if len(model) > 20000 {
					next.Release()
					next = r.Prefix(len(model) / 4)
					model = model[:len(model)/4]
				}
			}
			r.Release()
			r = next

			if err := Check(r); err != nil {
				t.Fatalf("chain %d step %d: %v", chain, step, err)
			}
			if r.Len() != len(model) {
				t.Fatalf("chain %d step %d: Len() = %d, want %d", chain, step, r.Len(), len(model))
			}
		}
		if string(r.Runes()) != string(model) {
			t.Fatalf("chain %d: content mismatch", chain)
		}
		r.Release()
	}

	if got := DefaultPool.LiveNodes(); got != before {
		t.Errorf("leaked %d nodes", got-before)
	}
}
