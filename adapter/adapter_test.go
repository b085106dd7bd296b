package adapter

import (
	"testing"

	"github.com/ethverify/headerverify/era"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExternal() *ExternalHeader {
	return &ExternalHeader{
		ParentHash:            "0x" + repeat("ab", 32),
		OmmersHash:            "0x" + repeat("cd", 32),
		Beneficiary:           "0x" + repeat("12", 20),
		StateRoot:             "0x" + repeat("34", 32),
		TransactionsRoot:      "0x" + repeat("56", 32),
		ReceiptsRoot:          "0x" + repeat("78", 32),
		LogsBloom:             "0x" + repeat("00", 256),
		MixHash:               "0x" + repeat("9a", 32),
		Nonce:                 "0x" + repeat("01", 8),
		ExtraData:             "0xdeadbeef",
		Number:                19500000,
		GasLimit:              30000000,
		GasUsed:               15000000,
		Difficulty:            "0",
		Timestamp:             "1700000000",
		BaseFeePerGas:         "1000000000",
		WithdrawalsRoot:       "0x" + repeat("bc", 32),
		BlobGasUsed:           "131072",
		ExcessBlobGas:         "0",
		ParentBeaconBlockRoot: "0x" + repeat("de", 32),
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestToHeaderLaxZeroFillsAbsentFields(t *testing.T) {
	ext := &ExternalHeader{
		ParentHash: "0x" + repeat("ab", 32),
	}
	h, err := ToHeader(era.Genesis, ext, nil, false, 0)
	require.NoError(t, err)
	assert.True(t, h.Difficulty.IsZero())
	assert.True(t, h.Timestamp.IsZero())
}

func TestToHeaderStrictRejectsAbsentFields(t *testing.T) {
	ext := &ExternalHeader{
		ParentHash: "0x" + repeat("ab", 32),
	}
	_, err := ToHeader(era.Genesis, ext, nil, true, 0)
	require.Error(t, err)
	assert.IsType(t, &FailureError{}, err)
}

func TestToHeaderGenesisRoundTrip(t *testing.T) {
	ext := sampleExternal()
	h, err := ToHeader(era.Genesis, ext, nil, false, 0)
	require.NoError(t, err)

	back := FromHeader(era.Genesis, h)
	assert.Equal(t, ext.ParentHash, back.ParentHash)
	assert.Equal(t, ext.Beneficiary, back.Beneficiary)
	assert.Equal(t, ext.ExtraData, back.ExtraData)
	assert.Empty(t, back.BaseFeePerGas, "genesis era must not carry base_fee_per_gas")
}

func TestToHeaderDencunCarriesEip4844Fields(t *testing.T) {
	ext := sampleExternal()
	h, err := ToHeader(era.Dencun, ext, nil, false, 0)
	require.NoError(t, err)

	back := FromHeader(era.Dencun, h)
	assert.Equal(t, ext.BlobGasUsed, back.BlobGasUsed)
	assert.Equal(t, ext.ExcessBlobGas, back.ExcessBlobGas)
	assert.Equal(t, ext.ParentBeaconBlockRoot, back.ParentBeaconBlockRoot)
}

func TestToHeaderExtraDataMaxBytesEnforced(t *testing.T) {
	ext := sampleExternal()
	ext.ExtraData = "0x" + repeat("ff", 40)
	_, err := ToHeader(era.Genesis, ext, nil, false, 32)
	require.Error(t, err)
	assert.IsType(t, &FailureError{}, err)
}

func TestToHeaderBadHexFails(t *testing.T) {
	ext := sampleExternal()
	ext.ParentHash = "0xzz"
	_, err := ToHeader(era.Genesis, ext, nil, false, 0)
	require.Error(t, err)
	assert.IsType(t, &FailureError{}, err)
}
