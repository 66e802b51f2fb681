package crypto

import (
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ed25519SingleSigScheme байт схемы подписи, дописываемый к публичному ключу
const ed25519SingleSigScheme = 0x00

// DeriveAddress выводит адрес аккаунта из публичного ключа ed25519:
// 0x + hex(sha3-256(pubkey || scheme))
func DeriveAddress(pub ed25519.PublicKey) (string, error) {
	if len(pub) != ed25519.PublicKeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}

	buf := make([]byte, 0, len(pub)+1)
	buf = append(buf, pub...)
	buf = append(buf, ed25519SingleSigScheme)

	sum := sha3.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:]), nil
}

// TransactionHash вычисляет детерминированный хеш транзакции.
// Каждое поле кодируется с префиксом длины, поэтому разные наборы
// аргументов не могут дать одинаковую последовательность байтов.
func TransactionHash(sender string, sequence uint64, function string, args []string) string {
	h := sha3.New256()

	writeField := func(s string) {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s)))
		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}

	writeField(sender)
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], sequence)
	h.Write(seqBuf[:])
	writeField(function)
	for _, a := range args {
		writeField(a)
	}

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// PayloadDigest хеширует вызываемую функцию и аргументы транзакции.
// Дайджест входит в подписанный session token и привязывает его к телу запроса.
func PayloadDigest(function string, args []string) string {
	return TransactionHash("", 0, function, args)
}
