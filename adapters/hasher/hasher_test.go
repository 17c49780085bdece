package hasher_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/hasher"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

func TestHashers(t *testing.T) {
	tests := []struct {
		name string
		h    ports.Hasher
	}{
		{"bcrypt", hasher.NewBcrypt(bcrypt.MinCost)},
		{"plain", hasher.Plain{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := tt.h.Hash("123456")
			if err != nil {
				t.Fatalf("Hash: %v", err)
			}
			if !tt.h.Compare(hash, "123456") {
				t.Error("Compare should accept the right password")
			}
			if tt.h.Compare(hash, "654321") {
				t.Error("Compare should reject a wrong password")
			}
			if tt.h.Compare(hash, "") {
				t.Error("Compare should reject an empty password")
			}
			if _, err := tt.h.Hash(""); !errors.Is(err, hasher.ErrEmptyPassword) {
				t.Errorf("Hash(\"\") err = %v, want ErrEmptyPassword", err)
			}
		})
	}
}

func TestBcrypt_InvalidCostFallsBack(t *testing.T) {
	for _, cost := range []int{1, 100} {
		h := hasher.NewBcrypt(cost)
		hash, err := h.Hash("pw")
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		got, err := bcrypt.Cost(hash)
		if err != nil || got != bcrypt.DefaultCost {
			t.Errorf("cost %d: hash cost = %d, %v, want %d", cost, got, err, bcrypt.DefaultCost)
		}
	}
}

func TestBcrypt_CompareRejectsEmptyHash(t *testing.T) {
	if hasher.NewBcrypt(bcrypt.MinCost).Compare(nil, "pw") {
		t.Error("Compare(nil) should be false")
	}
}
