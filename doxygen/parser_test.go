package doxygen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roc-streaming/bindgen/errors"
)

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadXML_Missing(t *testing.T) {
	_, err := loadXML(t.TempDir(), "config_8h.xml")
	assert.ErrorIs(t, err, errors.ErrMissingInput)
}

func TestLoadXML_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "config_8h.xml", `<doxygen><unclosed>`)

	_, err := loadXML(dir, "config_8h.xml")
	assert.ErrorIs(t, err, errors.ErrBadInput)
}

func TestParseEnums(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, enumsFile, `<doxygen>
<compounddef>
  <sectiondef kind="enum">
    <memberdef kind="enum">
      <name>roc_interface</name>
      <enumvalue>
        <name>ROC_INTERFACE_AUDIO_SOURCE</name>
        <initializer>= 11</initializer>
        <briefdescription><para>Source interface.</para></briefdescription>
      </enumvalue>
      <enumvalue>
        <name>ROC_INTERFACE_AUDIO_REPAIR</name>
        <initializer>= 12</initializer>
        <briefdescription><para>Repair interface.</para></briefdescription>
      </enumvalue>
      <briefdescription><para>Network interface.</para></briefdescription>
    </memberdef>
  </sectiondef>
  <sectiondef kind="func">
    <memberdef kind="function"><name>roc_ignored</name></memberdef>
  </sectiondef>
</compounddef>
</doxygen>`)

	enums, err := parseEnums(dir)
	require.NoError(t, err)
	require.Len(t, enums, 1)

	e := enums[0]
	assert.Equal(t, "roc_interface", e.Name)
	assert.Equal(t, "Network interface.", e.Doc.Brief().Items[0].Text)

	require.Len(t, e.Values, 2)
	assert.Equal(t, "ROC_INTERFACE_AUDIO_SOURCE", e.Values[0].Name)
	assert.Equal(t, "11", e.Values[0].Value)
	assert.Equal(t, "Source interface.", e.Values[0].Doc.Brief().Items[0].Text)
	assert.Equal(t, "ROC_INTERFACE_AUDIO_REPAIR", e.Values[1].Name)
	assert.Equal(t, "12", e.Values[1].Value)
}

func TestParseStructs(t *testing.T) {
	dir := t.TempDir()
	for i, file := range structFiles {
		writeExport(t, dir, file, fmt.Sprintf(`<doxygen>
<compounddef>
  <compoundname>roc_struct_%d</compoundname>
  <briefdescription><para>Struct %d.</para></briefdescription>
  <sectiondef kind="public-attrib">
    <memberdef kind="variable">
      <type>unsigned int</type>
      <name>plain_field</name>
      <briefdescription><para>Plain.</para></briefdescription>
    </memberdef>
    <memberdef kind="variable">
      <type><ref refid="r" kindref="member">roc_resampler_backend</ref></type>
      <name>ref_field</name>
      <briefdescription><para>Referenced.</para></briefdescription>
    </memberdef>
    <memberdef kind="function">
      <name>not_a_field</name>
    </memberdef>
  </sectiondef>
</compounddef>
</doxygen>`, i, i))
	}

	structs, err := parseStructs(dir)
	require.NoError(t, err)
	require.Len(t, structs, len(structFiles))

	s := structs[0]
	assert.Equal(t, "roc_struct_0", s.Name)
	assert.Equal(t, "Struct 0.", s.Doc.Brief().Items[0].Text)

	require.Len(t, s.Fields, 2)
	assert.Equal(t, "plain_field", s.Fields[0].Name)
	assert.Equal(t, "unsigned int", s.Fields[0].Type)
	assert.Equal(t, "ref_field", s.Fields[1].Name)
	assert.Equal(t, "roc_resampler_backend", s.Fields[1].Type)
}

func TestParseStructType(t *testing.T) {
	plain := parseXML(t, `<type>unsigned long long</type>`)
	assert.Equal(t, "unsigned long long", parseStructType(plain))

	ref := parseXML(t, `<type><ref refid="r" kindref="member">roc_fec_encoding</ref></type>`)
	assert.Equal(t, "roc_fec_encoding", parseStructType(ref))

	assert.Equal(t, "", parseStructType(nil))
}

func TestParseClasses(t *testing.T) {
	dir := t.TempDir()
	for i, file := range classFiles {
		writeExport(t, dir, file, fmt.Sprintf(`<doxygen>
<compounddef>
  <sectiondef kind="typedef">
    <memberdef kind="typedef">
      <name>roc_class_%d</name>
      <briefdescription><para>Class %d.</para></briefdescription>
    </memberdef>
  </sectiondef>
  <sectiondef kind="func">
    <memberdef kind="function">
      <name>roc_class_%d_open</name>
      <briefdescription><para>Open it.</para></briefdescription>
    </memberdef>
    <memberdef kind="function">
      <name>roc_class_%d_close</name>
      <briefdescription><para>Close it.</para></briefdescription>
    </memberdef>
  </sectiondef>
</compounddef>
</doxygen>`, i, i, i, i))
	}

	classes, err := parseClasses(dir)
	require.NoError(t, err)
	require.Len(t, classes, len(classFiles))

	c := classes[0]
	assert.Equal(t, "roc_class_0", c.Name)
	assert.Equal(t, "Class 0.", c.Doc.Brief().Items[0].Text)

	require.Len(t, c.Methods, 2)
	assert.Equal(t, "roc_class_0_open", c.Methods[0].Name)
	assert.Equal(t, "roc_class_0_close", c.Methods[1].Name)
}

func TestParseClasses_MissingTypedef(t *testing.T) {
	dir := t.TempDir()
	for _, file := range classFiles {
		writeExport(t, dir, file, `<doxygen><compounddef>
<sectiondef kind="func">
  <memberdef kind="function"><name>roc_orphan</name></memberdef>
</sectiondef>
</compounddef></doxygen>`)
	}

	_, err := parseClasses(dir)
	assert.ErrorIs(t, err, errors.ErrBadInput)
}
