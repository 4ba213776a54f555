package grammar

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrSchema is returned for YAML documents not shaped like a grammar.
var ErrSchema = errors.New("grammar document does not conform to schema")

// grammarSchema describes a document mapping variables to lists of bodies:
//
//	S: [aSb, A]
//	A: [S, a]
const grammarSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"minProperties": 1,
	"propertyNames": { "pattern": "^\\p{Lu}[0-9]*$" },
	"additionalProperties": {
		"type": "array",
		"items": { "type": "string", "minLength": 1 }
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(grammarSchema)

// ReadYAML reads a grammar from a YAML document. Variables are declared in
// document order.
func ReadYAML(r io.Reader) (*Grammar, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		tracer().Errorf("invalid grammar document: %s", strings.Join(msgs, "; "))
		return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
	}
	// decode again as node tree, as maps lose the order of variables
	var root yaml.Node
	if err = yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	mapping := root.Content[0]
	g := New()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		v := mapping.Content[i].Value
		if err = checkVariableName(v); err != nil {
			return nil, err
		}
		g.Declare(v)
		for _, item := range mapping.Content[i+1].Content {
			p, err := ParseBody(item.Value)
			if err != nil {
				return nil, fmt.Errorf("variable %s: %w", v, err)
			}
			g.Add(v, p)
		}
	}
	tracer().Infof("read grammar with %d variables from YAML", len(g.Variables()))
	return g, nil
}

// WriteYAML writes g as a YAML document, variables in sorted order.
func WriteYAML(w io.Writer, g *Grammar) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range g.SortedVariables() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, p := range g.prods(v) {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.String()})
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v}, seq)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}); err != nil {
		return err
	}
	return enc.Close()
}
