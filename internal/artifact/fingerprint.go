package artifact

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cbergoon/merkletree"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// Fingerprint identifies a script by content. Equal scripts have equal roots
// and a changed block changes exactly its own entry in Blocks.
type Fingerprint struct {
	Root   string   // merkle root over all blocks, in order
	Blocks []string // per-block hash, same order as Script.Blocks
}

// blockContent implements merkletree.Content for one script block.
type blockContent struct {
	index int
	hash  string
}

func (b blockContent) CalculateHash() ([]byte, error) {
	h := sha256.Sum256([]byte(b.hash))
	return h[:], nil
}

func (b blockContent) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(blockContent)
	if !ok {
		return false, nil
	}
	return b.index == o.index && b.hash == o.hash, nil
}

// Fingerprint computes the merkle fingerprint of the script. Leaves follow
// block order, so reordering blocks changes the root.
func (s *Script) Fingerprint() (*Fingerprint, error) {
	if s.IsEmpty() {
		return &Fingerprint{Root: emptyHash()}, nil
	}

	fp := &Fingerprint{Blocks: make([]string, len(s.Blocks))}
	leaves := make([]merkletree.Content, len(s.Blocks))
	for i, b := range s.Blocks {
		fp.Blocks[i] = hashString(b.Kind.String() + "\x00" + b.Text)
		leaves[i] = blockContent{index: i, hash: fp.Blocks[i]}
	}

	tree, err := merkletree.NewTree(leaves)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrFingerprint, err, "failed to build merkle tree").
			With("blocks", len(leaves))
	}
	fp.Root = hex.EncodeToString(tree.MerkleRoot())
	return fp, nil
}

// Changed returns the indexes of blocks whose hash differs between the two
// fingerprints, including blocks present in only one of them.
func (f *Fingerprint) Changed(other *Fingerprint) []int {
	if f == nil || other == nil {
		return nil
	}
	if f.Root == other.Root {
		return nil
	}
	n := max(len(f.Blocks), len(other.Blocks))
	var out []int
	for i := range n {
		if i >= len(f.Blocks) || i >= len(other.Blocks) || f.Blocks[i] != other.Blocks[i] {
			out = append(out, i)
		}
	}
	return out
}

func hashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

func emptyHash() string {
	return hashString("")
}
