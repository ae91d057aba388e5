// Package golang renders definitions as Go source stubs for roc-go.
package golang

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/errors"
	"github.com/roc-streaming/bindgen/gen"
	"github.com/roc-streaming/bindgen/gen/textwrap"
	"github.com/roc-streaming/bindgen/logger"
	"github.com/roc-streaming/bindgen/resolve"
)

// TypeMapping defines how primitive C types map to Go types.
var TypeMapping = map[string]string{
	"unsigned int":       "uint32",
	"int":                "int32",
	"unsigned long":      "uint32",
	"long":               "int32",
	"unsigned long long": "uint64",
	"long long":          "int64",
	"char":               "string",
}

// TypeOverride wins over TypeMapping for specific fields whose natural Go
// type differs from the mechanical mapping. Keyed by translated field name.
var TypeOverride = map[string]string{
	"PacketLength":          "time.Duration",
	"PacketInterleaving":    "bool",
	"TargetLatency":         "time.Duration",
	"LatencyTolerance":      "time.Duration",
	"NoPlaybackTimeout":     "time.Duration",
	"ChoppyPlaybackTimeout": "time.Duration",
	"ReuseAddress":          "bool",
}

// commentOverride replaces the derived top-level comment for definitions
// whose documentation must diverge from the extracted one.
var commentOverride = map[string]string{
	"ContextConfig": `// Context configuration.
// You can zero-initialize this struct to get a default config.
// See also Context.
`,
	"SenderConfig": `// Sender configuration.
// You can zero-initialize this struct to get a default config.
// See also Sender.
`,
	"ReceiverConfig": `// Receiver configuration.
// You can zero-initialize this struct to get a default config.
// See also Receiver.
`,
}

// Generator implements gen.Generator for the Go target. It writes one .go
// file per definition under <baseDir>/roc/.
type Generator struct {
	baseDir string
	root    *api.Root
	refs    *resolve.Index
	header  []string
}

// NewGenerator creates a Go generator writing below baseDir.
func NewGenerator(baseDir string, root *api.Root, refs *resolve.Index) *Generator {
	return &Generator{
		baseDir: baseDir,
		root:    root,
		refs:    refs,
		header: []string{
			"Code generated by bindgen from roc-streaming/bindgen",
			fmt.Sprintf("roc-toolkit git tag: %s, commit: %s",
				root.Git.Tag, root.Git.Commit),
		},
	}
}

// Language returns "go".
func (g *Generator) Language() string {
	return "go"
}

// GenerateEnum writes a named integer type with a stringer directive and one
// constant per enum value.
func (g *Generator) GenerateEnum(e *api.EnumDefinition) error {
	goName := strings.TrimPrefix(e.Name, "roc_")
	typeName := gen.ToPascalCase(goName)

	var b strings.Builder
	g.writeHeader(&b)
	b.WriteString(g.typeComment(typeName, e.Doc))

	prefix := g.root.EnumPrefix(e.Name)
	goPrefix := gen.ToPascalCase(
		strings.TrimSuffix(strings.TrimPrefix(strings.ToLower(prefix), "roc_"), "_"))
	b.WriteString("//\n")
	fmt.Fprintf(&b, "//go:generate stringer -type %s -trimprefix %s -output %s_string.go\n",
		typeName, goPrefix, goName)

	fmt.Fprintf(&b, "type %s int\n\n", typeName)
	b.WriteString("const (\n")

	for i, value := range e.Values {
		goValue := gen.ToPascalCase(strings.TrimPrefix(strings.ToLower(value.Name), "roc_"))

		if i != 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.formatComment(value.Doc, "\t"))
		fmt.Fprintf(&b, "\t%s %s = %s\n", goValue, typeName, value.Value)
	}

	b.WriteString(")\n")

	return g.writeFile(g.filePath(goName, false), b.String())
}

// GenerateStruct writes a record type with one field per struct field.
// Zero initialization is the documented construction path.
func (g *Generator) GenerateStruct(st *api.StructDefinition) error {
	goName := strings.TrimPrefix(st.Name, "roc_")
	typeName := gen.ToPascalCase(goName)

	fieldNames := make(map[string]string, len(st.Fields))
	fieldTypes := make(map[string]string, len(st.Fields))
	for _, field := range st.Fields {
		fieldName := gen.ToPascalCase(strings.TrimPrefix(strings.ToLower(field.Name), "roc_"))

		var fieldType string
		switch {
		case strings.HasPrefix(field.Type, "roc"):
			fieldType = gen.ToPascalCase(strings.TrimPrefix(field.Type, "roc_"))
		case TypeOverride[fieldName] != "":
			fieldType = TypeOverride[fieldName]
		case TypeMapping[field.Type] != "":
			fieldType = TypeMapping[field.Type]
		default:
			fieldType = field.Type
		}

		fieldNames[field.Name] = fieldName
		fieldTypes[field.Name] = fieldType
	}

	goImports := make(map[string]bool)
	for _, fieldType := range fieldTypes {
		if strings.HasPrefix(fieldType, "time.") {
			goImports["time"] = true
		}
	}

	var b strings.Builder
	g.writeHeader(&b)

	if len(goImports) > 0 {
		names := make([]string, 0, len(goImports))
		for name := range goImports {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("import (\n")
		for _, name := range names {
			fmt.Fprintf(&b, "\t%q\n", name)
		}
		b.WriteString(")\n\n")
	}

	b.WriteString(g.typeComment(typeName, st.Doc))
	fmt.Fprintf(&b, "type %s struct {\n", typeName)

	for i, field := range st.Fields {
		if i != 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.formatComment(field.Doc, "\t"))
		fmt.Fprintf(&b, "\t%s %s\n", fieldNames[field.Name], fieldTypes[field.Name])
	}

	b.WriteString("}\n")

	return g.writeFile(g.filePath(goName, false), b.String())
}

// GenerateClass writes a scaffold: the handle type plus one stub func per
// method. Method signature translation is not implemented yet, so the file
// is marked as a dummy for hand-finishing.
func (g *Generator) GenerateClass(class *api.ClassDefinition) error {
	logger.Warnw("class binding emitted as dummy scaffold",
		"class", class.Name)

	goName := strings.TrimPrefix(class.Name, "roc_")
	typeName := gen.ToPascalCase(goName)

	var b strings.Builder
	g.writeHeader(&b)
	b.WriteString(g.typeComment(typeName, class.Doc))
	b.WriteString("//\n")

	fmt.Fprintf(&b, "type %s struct {\n}\n\n", typeName)

	for _, method := range class.Methods {
		goMethod := gen.ToPascalCase(strings.TrimPrefix(method.Name, class.Name+"_"))
		if goMethod == "Open" {
			goMethod += typeName
		}
		b.WriteString(g.formatComment(method.Doc, ""))
		fmt.Fprintf(&b, "func %s() {\n", goMethod)
		b.WriteString("\t// TODO: implement; fix signature\n")
		b.WriteString("}\n\n")
	}

	return g.writeFile(g.filePath(goName, true), b.String())
}

func (g *Generator) filePath(goName string, dummy bool) string {
	if dummy {
		goName += "_DUMMY"
	}
	return filepath.Join(g.baseDir, "roc", goName+".go")
}

func (g *Generator) writeHeader(b *strings.Builder) {
	for _, line := range g.header {
		b.WriteString("// " + line + "\n")
	}
	b.WriteString("\npackage roc\n\n")
}

// writeFile formats the source and writes it out. Formatting failures
// degrade to the unformatted text: a slightly ragged stub beats aborting
// the whole run.
func (g *Generator) writeFile(path, src string) error {
	logger.Debugw("writing file", "file", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}

	out := []byte(src)
	formatted, err := imports.Process(path, out, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		logger.Warnw("generated source does not format cleanly, writing as-is",
			"file", path, "error", err)
	} else {
		out = formatted
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func (g *Generator) typeComment(typeName string, doc api.DocComment) string {
	if override, ok := commentOverride[typeName]; ok {
		return override
	}
	return g.formatComment(doc, "")
}

// formatComment renders a DocComment as line comments reflowed to 80
// columns. Blocks after the first are separated by a bare comment line.
// List continuation lines get extra hanging indent.
func (g *Generator) formatComment(doc api.DocComment, indent string) string {
	indentLine := indent + "// "
	var sb strings.Builder

	for i, block := range doc.Blocks {
		if i != 0 {
			sb.WriteString(strings.TrimRight(indentLine, " ") + "\n")
		}

		text := g.blockString(block)
		for _, t := range strings.Split(text, "\n") {
			subsequent := indentLine
			if strings.HasPrefix(t, " - ") {
				subsequent = indentLine + "   "
			}

			t = strings.ReplaceAll(t, "( ", "(")
			t = strings.ReplaceAll(t, " )", ")")

			lines := textwrap.Wrap(t, textwrap.Options{
				Width:            80,
				InitialIndent:    indentLine,
				SubsequentIndent: subsequent,
			})
			for _, line := range lines {
				sb.WriteString(line + "\n")
			}
		}
	}

	return sb.String()
}

func (g *Generator) blockString(block api.DocBlock) string {
	var parts []string

	for _, item := range block.Items {
		switch item.Kind {
		case api.ItemText, api.ItemBold, api.ItemEmphasis:
			parts = append(parts, item.Text)
		case api.ItemRef, api.ItemCode:
			parts = append(parts, g.refString(item))
		case api.ItemSee:
			parts = append(parts, "See")
		case api.ItemList:
			var ul strings.Builder
			ul.WriteString("\n")
			for _, li := range item.Blocks {
				fmt.Fprintf(&ul, " - %s\n", g.blockString(li))
			}
			ul.WriteString("\n")
			parts = append(parts, ul.String())
		default:
			logger.Warnw("unknown doc item kind, skipping",
				"kind", item.Kind.String())
		}
	}

	s := strings.Join(parts, " ")
	s = strings.ReplaceAll(s, " ,", ",")
	return strings.ReplaceAll(s, " .", ".")
}

// refString renders a reference token in Go naming. Unresolved tokens pass
// through verbatim as plain text.
func (g *Generator) refString(item api.DocItem) string {
	ref, ok := g.refs.Resolve(item.Text)
	if !ok {
		if item.Kind == api.ItemRef {
			logger.Warnw("unresolved reference, emitting raw token",
				"token", item.Text)
		}
		return item.Text
	}

	switch ref.Kind {
	case api.RefEnum, api.RefStruct, api.RefClass, api.RefTypedef:
		return gen.ToPascalCase(strings.TrimPrefix(ref.Name, "roc_"))
	case api.RefEnumValue:
		return gen.ToPascalCase(strings.ToLower(strings.TrimPrefix(ref.Name, "ROC_")))
	case api.RefStructField:
		return gen.ToPascalCase(ref.Name)
	case api.RefClassMethod:
		className := gen.ToPascalCase(strings.TrimPrefix(ref.ClassName, "roc_"))
		if ref.MethodName == "open" {
			return fmt.Sprintf("Open%s()", className)
		}
		return fmt.Sprintf("%s.%s()", className, gen.ToPascalCase(ref.MethodName))
	default:
		logger.Warnw("unknown doc ref kind", "kind", ref.Kind.String())
		return gen.ToPascalCase(strings.TrimPrefix(ref.Name, "roc_"))
	}
}
