package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadParameters reads every parameter below prefix (e.g. /portfolio/prod) from AWS SSM
// Parameter Store, decrypting SecureStrings. The last path segment becomes the key, so
// /portfolio/prod/JWT_SECRET is returned as JWT_SECRET.
func LoadParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (map[string]string, error) {
	params := make(map[string]string)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("read parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			key := path.Base(aws.ToString(p.Name))
			if key == "" || key == "/" || key == "." {
				continue
			}
			params[key] = aws.ToString(p.Value)
		}
	}
	return params, nil
}

// Merge fills keys missing (or empty) in config from extra. Values already set in the
// process environment win.
func Merge(config map[string]string, extra map[string]string) map[string]string {
	if config == nil {
		config = make(map[string]string, len(extra))
	}
	for key, value := range extra {
		if strings.TrimSpace(config[key]) == "" {
			config[key] = value
		}
	}
	return config
}
