// Package csvimport lee borradores de clientes desde un CSV con cabecera.
// Acepta archivos exportados desde planillas en Windows-1252 o ISO-8859-1.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/clientes-api/internal/application/dto"
)

// Row borrador leído junto con su número de línea en el archivo (1 = cabecera).
type Row struct {
	Line  int
	Draft dto.CreateCustomerRequest
}

// Aliases de cabecera por campo (comparación sin mayúsculas ni espacios).
var headerAliases = map[string][]string{
	"name":            {"nome", "nombre", "name"},
	"address":         {"endereco", "endereço", "direccion", "dirección", "address"},
	"birth_date":      {"data_nascimento", "fecha_nacimiento", "birth_date"},
	"customer_type":   {"tipo_cliente", "tipo", "customer_type"},
	"personal_id":     {"cpf", "personal_id"},
	"organization_id": {"cnpj", "organization_id"},
}

// Decoder devuelve el decodificador para el nombre de encoding indicado.
func Decoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("csvimport: encoding no soportado %q", name)
}

// Read decodifica r con enc y devuelve una fila por registro. Las columnas
// se ubican por nombre; separador ',' o ';' (se detecta en la cabecera).
func Read(r io.Reader, enc encoding.Encoding) ([]Row, error) {
	text, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("csvimport: decodificar: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(string(text)))
	cr.Comma = detectComma(string(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csvimport: archivo vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("csvimport: leer cabecera: %w", err)
	}
	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvimport: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		get := func(field string) string {
			i, ok := index[field]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, Row{
			Line: line,
			Draft: dto.CreateCustomerRequest{
				Name:           get("name"),
				Address:        get("address"),
				BirthDate:      get("birth_date"),
				CustomerType:   get("customer_type"),
				PersonalID:     get("personal_id"),
				OrganizationID: get("organization_id"),
			},
		})
	}
	return rows, nil
}

func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		for field, aliases := range headerAliases {
			for _, a := range aliases {
				if key == a {
					index[field] = i
				}
			}
		}
	}
	for _, required := range []string{"name", "address", "birth_date", "customer_type"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("csvimport: falta la columna %q en la cabecera", headerAliases[required][0])
		}
	}
	if _, pf := index["personal_id"]; !pf {
		if _, pj := index["organization_id"]; !pj {
			return nil, errors.New("csvimport: la cabecera debe incluir cpf o cnpj")
		}
	}
	return index, nil
}

func detectComma(text string) rune {
	first, _, _ := strings.Cut(text, "\n")
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
