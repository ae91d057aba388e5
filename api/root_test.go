package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoot() *Root {
	enums := []*EnumDefinition{
		{Name: "roc_interface", Values: []EnumValue{
			{Name: "ROC_INTERFACE_AUDIO_SOURCE", Value: "0x1"},
		}},
		{Name: "roc_protocol", Values: []EnumValue{
			{Name: "ROC_PROTO_RTP", Value: "0x10000"},
		}},
	}
	structs := []*StructDefinition{
		{Name: "roc_sender_config", Fields: []StructField{
			{Name: "packet_length", Type: "unsigned long long"},
			{Name: "fec_encoding", Type: "roc_fec_encoding"},
		}},
		{Name: "roc_receiver_config", Fields: []StructField{
			{Name: "packet_length", Type: "unsigned long long"},
		}},
	}
	classes := []*ClassDefinition{
		{Name: "roc_sender", Methods: []ClassMethod{
			{Name: "roc_sender_open"},
			{Name: "roc_sender_write"},
		}},
	}
	return NewRoot(GitInfo{Tag: "v0.4.0", Commit: "abc1234"},
		enums, structs, classes,
		map[string]string{"roc_protocol": "ROC_PROTO_"})
}

func TestNewRoot_DerivesEnumPrefixes(t *testing.T) {
	root := testRoot()

	// Default derivation: uppercase name + trailing underscore
	assert.Equal(t, "ROC_INTERFACE_", root.EnumPrefix("roc_interface"))

	// Odd prefixes are explicitly declared and override the derivation
	assert.Equal(t, "ROC_PROTO_", root.EnumPrefix("roc_protocol"))
}

func TestNewRoot_IndexesStructFields(t *testing.T) {
	root := testRoot()

	assert.True(t, root.HasField("packet_length"))
	assert.True(t, root.HasField("fec_encoding"))
	assert.False(t, root.HasField("no_such_field"))
}

func TestNewRoot_PreservesDeclarationOrder(t *testing.T) {
	root := testRoot()

	require.Len(t, root.Enums, 2)
	assert.Equal(t, "roc_interface", root.Enums[0].Name)
	assert.Equal(t, "roc_protocol", root.Enums[1].Name)

	require.Len(t, root.Structs, 2)
	assert.Equal(t, "roc_sender_config", root.Structs[0].Name)
	assert.Equal(t, "roc_receiver_config", root.Structs[1].Name)
}

func TestRoot_Lookups(t *testing.T) {
	root := testRoot()

	e, ok := root.Enum("roc_interface")
	require.True(t, ok)
	assert.Equal(t, "roc_interface", e.Name)

	_, ok = root.Enum("roc_sender")
	assert.False(t, ok)

	s, ok := root.Struct("roc_sender_config")
	require.True(t, ok)
	assert.Len(t, s.Fields, 2)

	c, ok := root.Class("roc_sender")
	require.True(t, ok)
	assert.Len(t, c.Methods, 2)
}

func TestDocComment_Brief(t *testing.T) {
	doc := DocComment{Blocks: []DocBlock{
		{Items: []DocItem{{Kind: ItemText, Text: "Short description."}}},
		{Items: []DocItem{{Kind: ItemText, Text: "Details."}}},
	}}
	assert.Equal(t, "Short description.", doc.Brief().Items[0].Text)

	// An empty comment still has a renderable brief block
	assert.Empty(t, DocComment{}.Brief().Items)
}
