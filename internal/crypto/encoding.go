// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "encoding/base64"

// EncodedSecret is the text-safe form of [Sealed] used on the wire and in
// storage: both fields are standard base64.
type EncodedSecret struct {
	Ciphertext string
	IV         string
}

// Encode converts raw ciphertext and IV to standard base64.
func (s Sealed) Encode() EncodedSecret {
	return EncodedSecret{
		Ciphertext: base64.StdEncoding.EncodeToString(s.Ciphertext),
		IV:         base64.StdEncoding.EncodeToString(s.IV),
	}
}

// Decode reverses [Sealed.Encode]. Returns [ErrInvalidInput] if either field
// is not valid standard base64.
func (e EncodedSecret) Decode() (Sealed, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil {
		return Sealed{}, errMalformedEncoded
	}

	iv, err := base64.StdEncoding.DecodeString(e.IV)
	if err != nil {
		return Sealed{}, errMalformedEncoded
	}

	return Sealed{Ciphertext: ciphertext, IV: iv}, nil
}
