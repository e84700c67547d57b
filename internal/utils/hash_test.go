// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/simbaid-sync/models"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_SumHex_WithRealPayload(t *testing.T) {
	h := NewHasher(testHashKey)

	payload := models.LoanApplication{
		ApplicationID: "LA123",
		Amount:        25000,
		Currency:      "KES",
		Purpose:       models.LoanPurposeAgriculture,
		TermMonths:    12,
		AgreeToTerms:  true,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := h.SumHex(data)
	if got != HashString(string(data), testHashKey) {
		t.Fatal("SumHex and HashString must agree")
	}
	if !h.Equal(got, HashString(string(data), testHashKey)) {
		t.Fatal("Equal must accept identical digests")
	}

	payload.Amount = 30000
	changed, _ := json.Marshal(payload)
	if h.Equal(got, h.SumHex(changed)) {
		t.Fatal("different payloads must produce different digests")
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")
	if bytes.Equal(NewHasher("a").Sum(data), NewHasher("b").Sum(data)) {
		t.Fatal("different keys must produce different digests")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.SumHex([]byte("shared"))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := h.SumHex([]byte("shared")); got != want {
					t.Errorf("got %s, want %s", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("k"))
	mac.Write([]byte("v"))

	if got := HashString("v", "k"); got != hex.EncodeToString(mac.Sum(nil)) {
		t.Fatalf("unexpected digest %s", got)
	}
}
