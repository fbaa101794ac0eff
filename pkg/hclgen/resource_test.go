package hclgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mlorant/tfregen/pkg/engine"
	"github.com/mlorant/tfregen/pkg/state"
)

func TestResourceBlock(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name     string
		resource engine.Resource
		want     string
	}{
		{
			name: "basic resource",
			resource: engine.Resource{
				Type: "aws_instance",
				Name: "web",
				ID:   "i-123",
				Attributes: state.Object{
					{Key: "id", Value: state.StringVal("i-123")},
					{Key: "ami", Value: state.StringVal("ami-1")},
					{Key: "tags", Value: state.ObjectVal([]state.Field{
						{Key: "Name", Value: state.StringVal("web")},
					})},
				},
				Category: "compute",
			},
			want: "resource \"aws_instance\" \"web\" {\n" +
				"  ami = \"ami-1\"\n" +
				"  tags = {\n" +
				"    Name = \"web\"\n" +
				"  }\n" +
				"}",
		},
		{
			name: "excluded and empty attributes are dropped",
			resource: engine.Resource{
				Type: "aws_s3_bucket",
				Name: "logs",
				Attributes: state.Object{
					{Key: "arn", Value: state.StringVal("arn:aws:s3:::logs")},
					{Key: "bucket", Value: state.StringVal("logs")},
					{Key: "acl", Value: state.StringVal("")},
					{Key: "policy", Value: state.NullVal()},
					{Key: "_private", Value: state.StringVal("x")},
					{Key: "tags_all", Value: state.ObjectVal(nil)},
					{Key: "versioning", Value: state.BoolVal(false)},
				},
				Category: "storage",
			},
			want: "resource \"aws_s3_bucket\" \"logs\" {\n" +
				"  bucket = \"logs\"\n" +
				"  versioning = false\n" +
				"}",
		},
		{
			name: "attribute order follows the state",
			resource: engine.Resource{
				Type: "aws_vpc",
				Name: "main",
				Attributes: state.Object{
					{Key: "tags", Value: state.ObjectVal(nil)},
					{Key: "cidr_block", Value: state.StringVal("10.0.0.0/16")},
					{Key: "enable_dns_support", Value: state.BoolVal(true)},
				},
				Category: "networking",
			},
			want: "resource \"aws_vpc\" \"main\" {\n" +
				"  tags = {}\n" +
				"  cidr_block = \"10.0.0.0/16\"\n" +
				"  enable_dns_support = true\n" +
				"}",
		},
		{
			name: "instance index disambiguates the label",
			resource: engine.Resource{
				Type:          "aws_instance",
				Name:          "web",
				InstanceIndex: intPtr(1),
				Attributes: state.Object{
					{Key: "ami", Value: state.StringVal("ami-1")},
				},
				Category: "compute",
			},
			want: "resource \"aws_instance\" \"web_1\" {\n" +
				"  ami = \"ami-1\"\n" +
				"}",
		},
		{
			name: "no renderable attributes",
			resource: engine.Resource{
				Type: "aws_eip",
				Name: "nat",
				Attributes: state.Object{
					{Key: "id", Value: state.StringVal("eipalloc-1")},
				},
				Category: "networking",
			},
			want: "resource \"aws_eip\" \"nat\" {\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResourceBlock(tt.resource)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
