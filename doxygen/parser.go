// Package doxygen extracts the documented API surface from the Doxygen XML
// export produced by the roc-toolkit build, and assembles the immutable
// model generation reads from.
package doxygen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/errors"
	"github.com/roc-streaming/bindgen/logger"
)

// oddEnumPrefixes overrides the default "uppercase name + underscore"
// value-prefix derivation for enums with irregular prefixes.
var oddEnumPrefixes = map[string]string{
	"roc_protocol": "ROC_PROTO_",
}

// All enums live in the config header's export.
const enumsFile = "config_8h.xml"

var structFiles = []string{
	"structroc__context__config.xml",
	"structroc__receiver__config.xml",
	"structroc__sender__config.xml",
	"structroc__interface__config.xml",
	"structroc__media__encoding.xml",
}

var classFiles = []string{
	"context_8h.xml",
	"receiver_8h.xml",
	"sender_8h.xml",
	"endpoint_8h.xml",
}

// Parse reads the whole Doxygen export plus the toolkit's git metadata and
// assembles the Root. Any missing or unparseable input is fatal.
func Parse(toolkitDir, doxygenDir string) (*api.Root, error) {
	git, err := ReadGitInfo(toolkitDir)
	if err != nil {
		return nil, err
	}

	enums, err := parseEnums(doxygenDir)
	if err != nil {
		return nil, err
	}
	structs, err := parseStructs(doxygenDir)
	if err != nil {
		return nil, err
	}
	classes, err := parseClasses(doxygenDir)
	if err != nil {
		return nil, err
	}

	return api.NewRoot(git, enums, structs, classes, oddEnumPrefixes), nil
}

// loadXML reads one export file into an element tree.
func loadXML(doxygenDir, name string) (*element, error) {
	path := filepath.Join(doxygenDir, name)
	logger.Infow("parsing", "file", path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrMissingInput, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	root, err := decodeXML(f)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrBadInput, "%s: %v", path, err)
	}
	return root, nil
}

func parseEnums(doxygenDir string) ([]*api.EnumDefinition, error) {
	root, err := loadXML(doxygenDir, enumsFile)
	if err != nil {
		return nil, err
	}

	var enums []*api.EnumDefinition

	for _, section := range root.descendants("sectiondef") {
		if section.attr("kind") != "enum" {
			continue
		}
		for _, member := range section.childrenByTag("memberdef") {
			if member.attr("kind") != "enum" {
				continue
			}

			name := member.childText("name")
			doc := parseDocComment(member)

			var values []api.EnumValue
			for _, ev := range member.childrenByTag("enumvalue") {
				values = append(values, api.EnumValue{
					Name:  ev.childText("name"),
					Value: strings.TrimPrefix(ev.childText("initializer"), "= "),
					Doc:   parseDocComment(ev),
				})
			}

			logger.Debugw("found enum in docs", "name", name)
			enums = append(enums, &api.EnumDefinition{
				Name: name, Values: values, Doc: doc,
			})
		}
	}

	return enums, nil
}

func parseStructs(doxygenDir string) ([]*api.StructDefinition, error) {
	var structs []*api.StructDefinition

	for _, file := range structFiles {
		root, err := loadXML(doxygenDir, file)
		if err != nil {
			return nil, err
		}

		compound := root.descendant("compounddef")
		if compound == nil {
			return nil, errors.Wrapf(errors.ErrBadInput, "%s: no compounddef", file)
		}

		name := compound.childText("compoundname")
		doc := parseDocComment(compound)

		var fields []api.StructField
		for _, section := range compound.childrenByTag("sectiondef") {
			for _, member := range section.childrenByTag("memberdef") {
				if member.attr("kind") != "variable" {
					continue
				}
				fields = append(fields, api.StructField{
					Name: member.childText("name"),
					Type: parseStructType(member.child("type")),
					Doc:  parseDocComment(member),
				})
			}
		}

		logger.Debugw("found struct in docs", "name", name)
		structs = append(structs, &api.StructDefinition{
			Name: name, Fields: fields, Doc: doc,
		})
	}

	return structs, nil
}

// parseStructType handles both plain type text and a nested ref element:
//
//	<type><ref refid="..." kindref="member">roc_resampler_backend</ref></type>
//	<type>unsigned int</type>
func parseStructType(typeEl *element) string {
	if typeEl == nil {
		return ""
	}
	if ref := typeEl.child("ref"); ref != nil {
		return ref.text()
	}
	return typeEl.text()
}

func parseClasses(doxygenDir string) ([]*api.ClassDefinition, error) {
	var classes []*api.ClassDefinition

	for _, file := range classFiles {
		root, err := loadXML(doxygenDir, file)
		if err != nil {
			return nil, err
		}

		compound := root.descendant("compounddef")
		if compound == nil {
			return nil, errors.Wrapf(errors.ErrBadInput, "%s: no compounddef", file)
		}

		var name string
		var doc api.DocComment
		var methods []api.ClassMethod

		for _, section := range compound.childrenByTag("sectiondef") {
			for _, member := range section.childrenByTag("memberdef") {
				switch member.attr("kind") {
				case "typedef":
					if name == "" {
						name = member.childText("name")
						doc = parseDocComment(member)
					}
				case "function":
					methods = append(methods, api.ClassMethod{
						Name: member.childText("name"),
						Doc:  parseDocComment(member),
					})
				}
			}
		}

		if name == "" {
			return nil, errors.Wrapf(errors.ErrBadInput, "%s: no class typedef", file)
		}

		logger.Debugw("found class in docs", "name", name)
		classes = append(classes, &api.ClassDefinition{
			Name: name, Methods: methods, Doc: doc,
		})
	}

	return classes, nil
}
