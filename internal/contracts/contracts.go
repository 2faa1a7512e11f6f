// Package contracts проверяет соответствие JSON-тел контрактам
// six-cities API по встроенным схемам.
package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"six-cities-client/internal/schemas"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы, чтобы они могли ссылаться
	// друг на друга через `$ref`.
	err := fs.WalkDir(schemas.SchemasFS, "documents", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, openErr := schemas.SchemasFS.Open(path)
			if openErr != nil {
				return openErr
			}
			defer file.Close()
			if addErr := compiler.AddResource(path, file); addErr != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, addErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Второй проход - компиляция и регистрация.
	err = fs.WalkDir(schemas.SchemasFS, "documents", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, compileErr := compiler.Compile(path)
			if compileErr != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, compileErr)
				return nil
			}
			compiledSchemas[generateKeyFromPath(path)] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "documents/comment-request.json"
// в ключ вида "CommentRequest".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "documents/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	caser := cases.Title(language.English)

	var builder strings.Builder
	for _, part := range strings.Split(trimmed, "-") {
		builder.WriteString(caser.String(part))
	}
	return builder.String()
}

// Validate проверяет JSON-документ по схеме с указанным ключом
// ("Offer", "OfferDetails", "Review", "AuthInfo", "CommentRequest",
// "LoginRequest").
func Validate(key string, data []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("unknown contract: %s", key)
	}

	var document interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		return fmt.Errorf("contract %s violated: %w", key, err)
	}
	return nil
}
