package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// A ParseError reports that the input is not a Terraform state document of a
// shape we understand.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed state document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed state document: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a state document from a file on disk.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %q: %w", path, err)
	}
	return data, nil
}

// Decode parses a state document from raw bytes. Two input forms are
// supported: a raw state file as stored by Terraform (top-level "resources"
// key), and the output of `terraform show -json` (top-level "values" key).
//
// For raw state files, attribute order from the document is preserved. For
// show -json output, Terraform has already decoded attributes into unordered
// maps, so attribute order falls back to sorted keys.
func Decode(data []byte) (*Document, error) {
	var probe struct {
		Resources json.RawMessage `json:"resources"`
		Values    json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ParseError{Reason: "not a JSON object", Err: err}
	}

	switch {
	case probe.Resources != nil:
		return decodeRawState(data)
	case probe.Values != nil:
		return decodeShowJSON(data)
	default:
		return nil, &ParseError{Reason: `document has neither a "resources" nor a "values" key`}
	}
}

// rawState mirrors the raw state file format. Attributes stay raw so we can
// decode them with field order intact.
type rawState struct {
	Version   int           `json:"version"`
	Resources []rawResource `json:"resources"`
}

type rawResource struct {
	Mode      string        `json:"mode"`
	Type      string        `json:"type"`
	Name      string        `json:"name"`
	Instances []rawInstance `json:"instances"`
}

type rawInstance struct {
	Attributes json.RawMessage `json:"attributes"`
}

func decodeRawState(data []byte) (*Document, error) {
	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: `unexpected shape under "resources"`, Err: err}
	}

	var doc Document
	for _, r := range raw.Resources {
		if r.Type == "" || r.Name == "" {
			return nil, &ParseError{Reason: "resource entry is missing its type or name"}
		}

		// Data sources describe reads, not provisioned infrastructure, and
		// have no place in generated configuration.
		if r.Mode == "data" {
			continue
		}

		resource := Resource{Type: r.Type, Name: r.Name}
		for _, inst := range r.Instances {
			attrs, err := decodeAttributes(inst.Attributes)
			if err != nil {
				return nil, &ParseError{
					Reason: fmt.Sprintf("invalid attributes for %s.%s", r.Type, r.Name),
					Err:    err,
				}
			}
			resource.Instances = append(resource.Instances, Instance{Attributes: attrs})
		}

		doc.Resources = append(doc.Resources, resource)
	}

	return &doc, nil
}

func decodeAttributes(raw json.RawMessage) (Object, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if v.Kind == KindNull {
		return nil, nil
	}
	if v.Kind != KindObject {
		return nil, fmt.Errorf("attributes are not an object")
	}

	return v.Object, nil
}

// decodeValue reads one JSON value from dec into the Value union. Unlike
// json.Unmarshal into a map, this keeps object fields in document order.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NullVal(), nil
	case bool:
		return BoolVal(t), nil
	case json.Number:
		return NumberVal(t.String()), nil
	case string:
		return StringVal(t), nil
	case json.Delim:
		switch t {
		case '[':
			elems := []Value{}
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return ListVal(elems), nil
		case '{':
			fields := Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is not a string")
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return ObjectVal(fields), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}
