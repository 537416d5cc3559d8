package utils

import (
	"reflect"
	"strings"
	"time"
)

const CNPJLength = 14

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// NormalizeCNPJ strips everything but digits. Callers compare and query
// only on the normalized form.
func NormalizeCNPJ(cnpj string) string {
	var b strings.Builder
	b.Grow(CNPJLength)
	for _, ch := range cnpj {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// FormatCNPJ renders the display mask XX.XXX.XXX/XXXX-XX, returning the
// input unchanged when it does not normalize to 14 digits.
func FormatCNPJ(cnpj string) string {
	c := NormalizeCNPJ(cnpj)
	if len(c) != CNPJLength {
		return cnpj
	}
	return c[0:2] + "." + c[2:5] + "." + c[5:8] + "/" + c[8:12] + "-" + c[12:14]
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(strings.TrimSpace(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(strings.TrimSpace(field.Index(j).String()))
				}
			}
		}
	}
}
