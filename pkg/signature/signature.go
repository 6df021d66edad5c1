// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package signature signs the byte encoding of frequency domain frames.  Keys
// are EdDSA keys over the twisted Edwards curve embedded in BN254, derived
// deterministically from a FORE key, and messages are hashed with SHA3-256.
package signature

import (
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/consensys/go-fore/pkg/codec"
	"github.com/consensys/go-fore/pkg/fore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"
)

// domain separates the key derivation stream from any other use of the key.
const domain = "go-fore/signature/v1"

// Signer creates and checks signatures for a single key pair.
type Signer struct {
	private *eddsa.PrivateKey
}

// NewSigner derives a key pair from the given key.  The same key always yields
// the same key pair.
func NewSigner(key uint32) (*Signer, error) {
	var seed [4]byte
	//
	binary.LittleEndian.PutUint32(seed[:], key)
	// SHAKE-256 over the domain and key acts as a deterministic entropy source.
	stream := sha3.NewShake256()
	stream.Write([]byte(domain))
	stream.Write(seed[:])
	//
	private, err := eddsa.GenerateKey(stream)
	if err != nil {
		return nil, errors.Wrap(err, "deriving signing key")
	}
	//
	return &Signer{private}, nil
}

// PublicKey returns the compressed encoding of the public key.
func (s *Signer) PublicKey() []byte {
	return s.private.PublicKey.Bytes()
}

// CreateSignature signs the given frame encoding.
func (s *Signer) CreateSignature(msg []byte) ([]byte, error) {
	sig, err := s.private.Sign(msg, newHash())
	if err != nil {
		return nil, errors.Wrap(err, "signing frame")
	}
	//
	return sig, nil
}

// VerifySignature checks a signature against the given frame encoding.
// Malformed signatures are reported as invalid.
func (s *Signer) VerifySignature(msg []byte, sig []byte) bool {
	ok, err := s.private.PublicKey.Verify(sig, msg, newHash())
	if err != nil {
		log.Debugf("rejecting signature: %s", err)
		return false
	}
	//
	return ok
}

// Verify checks a signature given only the encoded public key.
func Verify(publicKey []byte, msg []byte, sig []byte) (bool, error) {
	var pub eddsa.PublicKey
	//
	if _, err := pub.SetBytes(publicKey); err != nil {
		return false, errors.Wrap(err, "malformed public key")
	}
	//
	ok, err := pub.Verify(sig, msg, newHash())
	if err != nil {
		return false, errors.Wrap(err, "malformed signature")
	}
	//
	return ok, nil
}

// EncodeFrame moves data into the frequency domain of the given system and
// returns its byte encoding, ready for signing.
func EncodeFrame(sys *fore.System, data []byte) []byte {
	return codec.Marshal(sys.ProcessData(data))
}

func newHash() hash.Hash {
	return sha3.New256()
}
