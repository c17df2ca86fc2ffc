package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/cashweb/paygate/bip70"
)

const (
	// HashLen is the length of a public key hash.
	HashLen = 20

	// p2pkhScriptLen is the exact length of a standard p2pkh locking
	// script: OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG.
	p2pkhScriptLen = 25

	// dataPrefixLen is the length of the service tag leading every
	// data-carrier payload.
	dataPrefixLen = 9

	// minDataScriptLen is the smallest well-formed data-carrier script:
	// OP_RETURN, length byte, service tag, public key hash.
	minDataScriptLen = 2 + dataPrefixLen + HashLen

	// MaxDataLen bounds the caller-supplied tail of a data-carrier
	// payload so the total still fits the one-byte length prefix.
	MaxDataLen = 0xff - dataPrefixLen - HashLen
)

// DataPrefix tags every data-carrier output issued by this gateway.
var DataPrefix = []byte("paygate/1")

// ExtractPubKeyHash returns the 20-byte hash locked by a standard p2pkh
// script, or nil if the script deviates from the canonical form in any way.
// All checks are bounds and equality tests; malformed input is a non-match,
// never a panic.
func ExtractPubKeyHash(script []byte) []byte {
	if len(script) != p2pkhScriptLen {
		return nil
	}
	if script[0] != txscript.OP_DUP || script[1] != txscript.OP_HASH160 || script[2] != txscript.OP_DATA_20 {
		return nil
	}
	if script[23] != txscript.OP_EQUALVERIFY || script[24] != txscript.OP_CHECKSIG {
		return nil
	}
	return script[3:23]
}

// CheckPubKeyHashOutput reports whether out pays exactly amount to the
// given public key hash.
func CheckPubKeyHashOutput(out *wire.TxOut, amount int64, pkHash []byte) bool {
	if out.Value != amount {
		return false
	}
	hash := ExtractPubKeyHash(out.PkScript)
	if hash == nil {
		return false
	}
	return bytes.Equal(hash, pkHash)
}

// CheckOutputs reports whether any output of tx pays exactly amount to
// pkHash. Additional outputs, such as change, do not disqualify the
// transaction.
func CheckOutputs(tx *wire.MsgTx, amount int64, pkHash []byte) bool {
	for _, out := range tx.TxOut {
		if CheckPubKeyHashOutput(out, amount, pkHash) {
			return true
		}
	}
	return false
}

// ExtractDataPayload returns the payload carried by a data-carrier script,
// or nil if the script is not a well-formed carrier. The payload is
// extracted, not interpreted. A well-formed script is OP_RETURN followed by
// a one-byte length that must equal the remaining payload length exactly;
// anything shorter than the minimum envelope is rejected before the length
// is even inspected.
func ExtractDataPayload(script []byte) []byte {
	if len(script) < minDataScriptLen {
		return nil
	}
	if script[0] != txscript.OP_RETURN {
		return nil
	}
	if int(script[1]) != len(script)-2 {
		return nil
	}
	return script[2:]
}

// CheckDataOutputs reports whether any output of tx carries exactly the
// expected data payload.
func CheckDataOutputs(tx *wire.MsgTx, payload []byte) bool {
	for _, out := range tx.TxOut {
		if bytes.Equal(ExtractDataPayload(out.PkScript), payload) {
			return true
		}
	}
	return false
}

// DataPayload builds the data-carrier payload demanded by an invoice:
// service tag, destination hash, then the caller-supplied data.
func DataPayload(pkHash, data []byte) []byte {
	payload := make([]byte, 0, dataPrefixLen+HashLen+len(data))
	payload = append(payload, DataPrefix...)
	payload = append(payload, pkHash...)
	payload = append(payload, data...)
	return payload
}

// GenerateOutputs builds the canonical output pair a valid payment must
// contain: the p2pkh payment output first, the zero-value data-carrier
// output second. The order is fixed for interoperability even though
// matching is order independent.
func GenerateOutputs(pkHash []byte, amount int64, data []byte) ([]*bip70.Output, error) {
	if len(pkHash) != HashLen {
		return nil, fmt.Errorf("destination hash must be %d bytes, got %d", HashLen, len(pkHash))
	}
	if amount < 0 {
		return nil, fmt.Errorf("negative amount %d", amount)
	}
	if len(data) > MaxDataLen {
		return nil, fmt.Errorf("data payload too large: %d > %d bytes", len(data), MaxDataLen)
	}

	p2pkhScript := make([]byte, 0, p2pkhScriptLen)
	p2pkhScript = append(p2pkhScript, txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20)
	p2pkhScript = append(p2pkhScript, pkHash...)
	p2pkhScript = append(p2pkhScript, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)

	payload := DataPayload(pkHash, data)
	dataScript := make([]byte, 0, 2+len(payload))
	dataScript = append(dataScript, txscript.OP_RETURN, byte(len(payload)))
	dataScript = append(dataScript, payload...)

	return []*bip70.Output{
		{Amount: uint64(amount), Script: p2pkhScript},
		{Amount: 0, Script: dataScript},
	}, nil
}
