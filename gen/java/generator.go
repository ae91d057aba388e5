// Package java renders definitions as Java source stubs for roc-java.
package java

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/errors"
	"github.com/roc-streaming/bindgen/gen"
	"github.com/roc-streaming/bindgen/gen/textwrap"
	"github.com/roc-streaming/bindgen/logger"
	"github.com/roc-streaming/bindgen/resolve"
)

const javaPackage = "org.rocstreaming.roctoolkit"

// TypeMapping defines how primitive C types map to Java types.
var TypeMapping = map[string]string{
	"unsigned int":       "int",
	"int":                "int",
	"unsigned long":      "long",
	"long":               "long",
	"unsigned long long": "long",
	"long long":          "long",
	"char":               "String",
}

// TypeOverride wins over TypeMapping for specific fields whose natural Java
// type differs from the mechanical mapping. Keyed by translated field name.
var TypeOverride = map[string]string{
	"packetLength":          "Duration",
	"targetLatency":         "Duration",
	"latencyTolerance":      "Duration",
	"noPlaybackTimeout":     "Duration",
	"choppyPlaybackTimeout": "Duration",
	"reuseAddress":          "boolean",
}

// NameOverride wins over the mechanical name derivation for a short
// enumerated list of definitions.
var NameOverride = map[string]string{
	"roc_context":         "RocContext",
	"roc_sender":          "RocSender",
	"roc_receiver":        "RocReceiver",
	"roc_context_config":  "RocContextConfig",
	"roc_sender_config":   "RocSenderConfig",
	"roc_receiver_config": "RocReceiverConfig",
}

// commentOverride replaces the derived Javadoc for definitions whose
// documentation must diverge from the extracted one.
var commentOverride = map[string]string{
	"RocContextConfig": `/**
 * Context configuration.
 * <p>
 * RocContextConfig object can be instantiated with {@link RocContextConfig#builder()}.
 *
 * @see RocContext
 */
`,
	"RocSenderConfig": `/**
 * Sender configuration.
 * <p>
 * RocSenderConfig object can be instantiated with {@link RocSenderConfig#builder()}.
 *
 * @see RocSender
 */
`,
	"RocReceiverConfig": `/**
 * Receiver configuration.
 * <p>
 * RocReceiverConfig object can be instantiated with {@link RocReceiverConfig#builder()}.
 *
 * @see RocReceiver
 */
`,
	"InterfaceConfig": `/**
 * Interface configuration.
 * <p>
 * Sender and receiver can have multiple slots ( {@link Slot} ), and each slot
 * can be bound or connected to multiple interfaces ( {@link Interface} ).
 * <p>
 * Each such interface has its own configuration, defined by this class.
 * <p>
 * See {@link RocSender.Configure()}, {@link RocReceiver.Configure()}.
 */
`,
}

// Inline Javadoc tags like {@link Enum#VALUE} must survive reflowing as one
// unit. Spaces inside the tag are masked before wrapping and restored per
// line afterwards; an underscore directly after the tag word can only come
// from the mask, since tag words are lowercase letters only.
var (
	maskRe   = regexp.MustCompile(`(\{@[a-z]+)(\s+)(\S+)(\})`)
	unmaskRe = regexp.MustCompile(`(\{@[a-z]+)(_)(\S+)(\})`)
)

// Generator implements gen.Generator for the Java target. It writes one
// .java file per definition under the Maven source layout.
type Generator struct {
	baseDir string
	root    *api.Root
	refs    *resolve.Index
	header  []string
}

// NewGenerator creates a Java generator writing below baseDir.
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

// Language returns "java".
func (g *Generator) Language() string {
	return "java"
}

// GenerateEnum writes a public enum with one int-valued constant per value.
func (g *Generator) GenerateEnum(e *api.EnumDefinition) error {
	javaName := g.javaName(e.Name)

	var b strings.Builder
	g.writeHeader(&b)
	b.WriteString(g.typeComment(javaName, e.Doc))
	b.WriteString("public enum " + javaName + " {\n")

	for _, value := range e.Values {
		javaValue := g.enumValueName(e.Name, value.Name)
		b.WriteString("\n")
		b.WriteString(g.formatJavadoc(value.Doc, 4))
		b.WriteString("    " + javaValue + "(" + value.Value + "),\n")
	}

	b.WriteString("    ;\n\n")
	b.WriteString("    final int value;\n\n")
	b.WriteString("    " + javaName + "(int value) {\n")
	b.WriteString("        this.value = value;\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return g.writeFile(g.filePath(javaName), b.String())
}

// GenerateStruct writes a Lombok builder class with one private field per
// struct field; builder() is the documented construction entry point.
func (g *Generator) GenerateStruct(st *api.StructDefinition) error {
	javaName := g.javaName(st.Name)

	var b strings.Builder
	g.writeHeader(&b)
	b.WriteString("import java.time.Duration;\n")
	b.WriteString("import lombok.*;\n\n")

	b.WriteString(g.typeComment(javaName, st.Doc))
	b.WriteString("@Getter\n")
	b.WriteString("@Builder(builderClassName = \"Builder\", toBuilder = true)\n")
	b.WriteString("@ToString\n")
	b.WriteString("@EqualsAndHashCode\n")
	b.WriteString("public class " + javaName + " {\n")

	for _, field := range st.Fields {
		b.WriteString("\n")
		b.WriteString(g.formatJavadoc(field.Doc, 4))
		fmt.Fprintf(&b, "    private %s %s;\n",
			g.fieldType(field), gen.ToCamelCase(field.Name))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "    public static %s.Builder builder() {\n", javaName)
	fmt.Fprintf(&b, "        return new %sValidator();\n", javaName)
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return g.writeFile(g.filePath(javaName), b.String())
}

// GenerateClass is a capability gap: method-signature translation for Java
// is not implemented yet, so no artifact is produced.
func (g *Generator) GenerateClass(class *api.ClassDefinition) error {
	logger.Warnw("class generation is not supported yet", "class", class.Name)
	return nil
}

func (g *Generator) filePath(javaName string) string {
	return filepath.Join(g.baseDir, "src/main/java",
		strings.ReplaceAll(javaPackage, ".", "/"), javaName+".java")
}

func (g *Generator) writeHeader(b *strings.Builder) {
	for _, line := range g.header {
		b.WriteString("// " + line + "\n")
	}
	b.WriteString("\npackage " + javaPackage + ";\n\n")
}

func (g *Generator) writeFile(path, src string) error {
	logger.Debugw("writing file", "file", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// javaName translates a roc_ name to its Java type name, honoring the
// override table.
func (g *Generator) javaName(rocName string) string {
	if override, ok := NameOverride[rocName]; ok {
		return override
	}
	return gen.ToPascalCase(strings.TrimPrefix(rocName, "roc_"))
}

// enumValueName strips the owning enum's registered prefix; the remainder
// keeps its source casing (Java constant convention).
func (g *Generator) enumValueName(rocEnumName, rocValueName string) string {
	return strings.TrimPrefix(rocValueName, g.root.EnumPrefix(rocEnumName))
}

func (g *Generator) fieldType(field api.StructField) string {
	javaFieldName := gen.ToCamelCase(field.Name)
	switch {
	case TypeOverride[javaFieldName] != "":
		return TypeOverride[javaFieldName]
	case strings.HasPrefix(field.Type, "roc_"):
		return g.javaName(field.Type)
	case TypeMapping[field.Type] != "":
		return TypeMapping[field.Type]
	default:
		return field.Type
	}
}

func (g *Generator) typeComment(javaName string, doc api.DocComment) string {
	if override, ok := commentOverride[javaName]; ok {
		return override
	}
	return g.formatJavadoc(doc, 0)
}

// formatJavadoc renders a DocComment as a Javadoc block reflowed to 80
// columns. Blocks after the first are separated by <p>. Inline tags are
// masked so the wrapper treats each {@link ...} as one atomic token.
func (g *Generator) formatJavadoc(doc api.DocComment, indentSize int) string {
	indent := strings.Repeat(" ", indentSize)
	indentLine := indent + " * "

	var sb strings.Builder
	sb.WriteString(indent + "/**\n")

	for i, block := range doc.Blocks {
		if i != 0 {
			sb.WriteString(indent + " * <p>\n")
		}

		text := g.blockString(block)
		text = maskRe.ReplaceAllString(text, "${1}_${3}${4}")

		for _, t := range strings.Split(text, "\n") {
			lines := textwrap.Wrap(t, textwrap.Options{
				Width:            80,
				InitialIndent:    indentLine,
				SubsequentIndent: indentLine,
			})
			for _, line := range lines {
				sb.WriteString(unmaskRe.ReplaceAllString(line, "${1} ${3}${4}") + "\n")
			}
		}
	}

	sb.WriteString(indent + " */\n")
	return sb.String()
}

func (g *Generator) blockString(block api.DocBlock) string {
	var parts []string

	for _, item := range block.Items {
		switch item.Kind {
		case api.ItemText:
			parts = append(parts, item.Text)
		case api.ItemBold:
			parts = append(parts, "<b>"+item.Text+"</b>")
		case api.ItemEmphasis:
			parts = append(parts, "<em>"+item.Text+"</em>")
		case api.ItemRef, api.ItemCode:
			parts = append(parts, g.refString(item))
		case api.ItemSee:
			parts = append(parts, "@see")
		case api.ItemList:
			var ul strings.Builder
			ul.WriteString("<ul>\n")
			for _, li := range item.Blocks {
				fmt.Fprintf(&ul, "<li>%s</li>\n", g.blockString(li))
			}
			ul.WriteString("</ul>\n")
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

// refString renders a reference token as a navigable {@link} when a target
// symbol exists, or an inline {@code} span otherwise. Struct fields have no
// stable link target in the builder classes, so they always render as code.
func (g *Generator) refString(item api.DocItem) string {
	var link string
	code := item.Text

	if ref, ok := g.refs.Resolve(item.Text); ok {
		switch ref.Kind {
		case api.RefEnum, api.RefStruct, api.RefClass, api.RefTypedef:
			link = g.javaName(ref.Name)
		case api.RefEnumValue:
			link = g.javaName(ref.EnumName) + "#" + ref.EnumValue
		case api.RefStructField:
			code = gen.ToCamelCase(ref.Name)
		case api.RefClassMethod:
			className := g.javaName(ref.ClassName)
			if ref.MethodName == "open" {
				link = className + "()"
			} else {
				link = className + "#" + gen.ToCamelCase(ref.MethodName) + "()"
			}
		default:
			logger.Warnw("unknown doc ref kind", "kind", ref.Kind.String())
			code = g.javaName(ref.Name)
		}
	} else if item.Kind == api.ItemRef {
		logger.Warnw("unresolved reference, emitting raw token",
			"token", item.Text)
	}

	if link != "" {
		return "{@link " + link + "}"
	}
	return "{@code " + code + "}"
}
