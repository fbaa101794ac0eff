package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRawState(t *testing.T) {
	input := []byte(`{
		"version": 4,
		"terraform_version": "1.7.0",
		"resources": [
			{
				"mode": "managed",
				"type": "aws_instance",
				"name": "web",
				"instances": [
					{
						"attributes": {
							"id": "i-123",
							"ami": "ami-1",
							"tags": {"Name": "web"}
						}
					}
				]
			},
			{
				"mode": "data",
				"type": "aws_ami",
				"name": "latest",
				"instances": [{"attributes": {"id": "ami-999"}}]
			},
			{
				"mode": "managed",
				"type": "aws_s3_bucket",
				"name": "logs",
				"instances": [
					{"attributes": {"bucket": "logs-0"}},
					{"attributes": {"bucket": "logs-1"}}
				]
			}
		]
	}`)

	want := &Document{
		Resources: []Resource{
			{
				Type: "aws_instance",
				Name: "web",
				Instances: []Instance{
					{Attributes: Object{
						{Key: "id", Value: StringVal("i-123")},
						{Key: "ami", Value: StringVal("ami-1")},
						{Key: "tags", Value: ObjectVal([]Field{
							{Key: "Name", Value: StringVal("web")},
						})},
					}},
				},
			},
			{
				Type: "aws_s3_bucket",
				Name: "logs",
				Instances: []Instance{
					{Attributes: Object{{Key: "bucket", Value: StringVal("logs-0")}}},
					{Attributes: Object{{Key: "bucket", Value: StringVal("logs-1")}}},
				},
			},
		},
	}

	got, err := Decode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePreservesAttributeOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order.
	input := []byte(`{
		"resources": [
			{
				"mode": "managed",
				"type": "aws_instance",
				"name": "web",
				"instances": [
					{"attributes": {"zeta": "1", "alpha": "2", "mu": "3"}}
				]
			}
		]
	}`)

	doc, err := Decode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var keys []string
	for _, f := range doc.Resources[0].Instances[0].Attributes {
		keys = append(keys, f.Key)
	}

	want := []string{"zeta", "alpha", "mu"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeValueTypes(t *testing.T) {
	input := []byte(`{
		"resources": [
			{
				"mode": "managed",
				"type": "aws_instance",
				"name": "web",
				"instances": [
					{
						"attributes": {
							"absent": null,
							"enabled": true,
							"count": 3,
							"ratio": 0.25,
							"zones": ["a", "b"],
							"empty": []
						}
					}
				]
			}
		]
	}`)

	doc, err := Decode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Object{
		{Key: "absent", Value: NullVal()},
		{Key: "enabled", Value: BoolVal(true)},
		{Key: "count", Value: NumberVal("3")},
		{Key: "ratio", Value: NumberVal("0.25")},
		{Key: "zones", Value: ListVal([]Value{StringVal("a"), StringVal("b")})},
		{Key: "empty", Value: ListVal([]Value{})},
	}

	if diff := cmp.Diff(want, doc.Resources[0].Instances[0].Attributes); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEmptyResources(t *testing.T) {
	doc, err := Decode([]byte(`{"version": 4, "resources": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Resources) != 0 {
		t.Errorf("expected no resources, got %d", len(doc.Resources))
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not JSON",
			input: `resources:`,
		},
		{
			name:  "not an object",
			input: `[1, 2, 3]`,
		},
		{
			name:  "neither resources nor values",
			input: `{"version": 4}`,
		},
		{
			name:  "resource without type",
			input: `{"resources": [{"name": "web", "instances": []}]}`,
		},
		{
			name:  "resource without name",
			input: `{"resources": [{"type": "aws_instance", "instances": []}]}`,
		},
		{
			name:  "resources not a list",
			input: `{"resources": {"type": "aws_instance"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error but got none")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected a *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestDecodeShowJSON(t *testing.T) {
	input := []byte(`{
		"format_version": "1.0",
		"values": {
			"root_module": {
				"resources": [
					{
						"address": "aws_instance.web[0]",
						"mode": "managed",
						"type": "aws_instance",
						"name": "web",
						"index": 0,
						"values": {"id": "i-123", "ami": "ami-1"}
					},
					{
						"address": "aws_instance.web[1]",
						"mode": "managed",
						"type": "aws_instance",
						"name": "web",
						"index": 1,
						"values": {"id": "i-456", "ami": "ami-1"}
					},
					{
						"address": "data.aws_ami.latest",
						"mode": "data",
						"type": "aws_ami",
						"name": "latest",
						"values": {"id": "ami-999"}
					}
				],
				"child_modules": [
					{
						"address": "module.net",
						"resources": [
							{
								"address": "module.net.aws_vpc.main",
								"mode": "managed",
								"type": "aws_vpc",
								"name": "main",
								"values": {"id": "vpc-1", "cidr_block": "10.0.0.0/16"}
							}
						]
					}
				]
			}
		}
	}`)

	want := &Document{
		Resources: []Resource{
			{
				Type: "aws_instance",
				Name: "web",
				Instances: []Instance{
					{Attributes: Object{
						{Key: "ami", Value: StringVal("ami-1")},
						{Key: "id", Value: StringVal("i-123")},
					}},
					{Attributes: Object{
						{Key: "ami", Value: StringVal("ami-1")},
						{Key: "id", Value: StringVal("i-456")},
					}},
				},
			},
			{
				Type: "aws_vpc",
				Name: "main",
				Instances: []Instance{
					{Attributes: Object{
						{Key: "cidr_block", Value: StringVal("10.0.0.0/16")},
						{Key: "id", Value: StringVal("vpc-1")},
					}},
				},
			},
		},
	}

	got, err := Decode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
