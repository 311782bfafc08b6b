package spec

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/legend"
	errs "github.com/matzehuels/chartkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	refPattern   = regexp.MustCompile(`^\d+(:\d+)?$`)
	colorPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{3}|#[0-9A-Fa-f]{6}|#[0-9A-Fa-f]{8}|[a-zA-Z]+)$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("chart_type", func(fl validator.FieldLevel) bool {
			return chart.Kind(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("chart_name", func(fl validator.FieldLevel) bool {
			return errs.ValidateChartName(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("curve", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			for _, c := range geom.Curves {
				if string(c) == s {
					return true
				}
			}
			return false
		})
		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			_, ok := legend.ParsePalette(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return colorPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("ref", func(fl validator.FieldLevel) bool {
			return refPattern.MatchString(fl.Field().String())
		})

		v.RegisterStructValidation(validateSeries, Series{})

		validateInst = v
	})
	return validateInst
}

// validateSeries requires every series to carry data in exactly one form.
func validateSeries(sl validator.StructLevel) {
	s := sl.Current().Interface().(Series)
	switch {
	case len(s.Values) == 0 && len(s.Points) == 0:
		sl.ReportError(s.Values, "Values", "values", "series_data", "")
	case len(s.Values) > 0 && len(s.Points) > 0:
		sl.ReportError(s.Points, "Points", "points", "series_data", "")
	}
}

// Validate checks a document. Struct rules are checked first, then rules
// spanning charts (unique names) and chart types (single series for pie
// charts, at least three axes for radar charts).
func Validate(doc *Document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]bool, len(doc.Charts))
	for i, c := range doc.Charts {
		if seen[c.Name] {
			return errs.New(errs.ErrCodeInvalidSpec, "charts[%d].name: duplicate chart name %q", i, c.Name)
		}
		seen[c.Name] = true

		if err := validateChart(c, i); err != nil {
			return err
		}
	}
	return nil
}

func validateChart(c Chart, i int) error {
	switch {
	case (c.Type == chart.KindPie || c.Type == chart.KindDonut) && len(c.Series) != 1:
		return errs.New(errs.ErrCodeInvalidSpec, "charts[%d].series: %s chart takes exactly one series, got %d", i, c.Type, len(c.Series))
	case c.Type == chart.KindRadar:
		for j, s := range c.Data() {
			if len(s.Points) < 3 {
				return errs.New(errs.ErrCodeInvalidSpec, "charts[%d].series[%d]: radar chart needs at least 3 values", i, j)
			}
		}
	case c.Type == chart.KindScatter:
		for j, s := range c.Series {
			if len(s.Values) > 0 {
				return errs.New(errs.ErrCodeInvalidSpec, "charts[%d].series[%d]: scatter chart needs points with x and y", i, j)
			}
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Wrap(errs.ErrCodeInvalidSpec, err, "invalid document")
	}

	ve := ves[0]
	field := fieldName(ve)
	code := errs.ErrCodeInvalidSpec
	switch ve.Tag() {
	case "chart_type":
		return errs.New(errs.ErrCodeInvalidChartType, "%s: unknown chart type %q (want one of %s)", field, ve.Value(), kindList())
	case "chart_name":
		code = errs.ErrCodeInvalidChartName
	case "series_data":
		series := field[:strings.LastIndexByte(field, '.')]
		return errs.New(code, "%s: series needs either values or points", series)
	}
	return errs.Wrap(code, err, "%s failed validation for tag '%s'", field, ve.Tag())
}

// fieldName turns "Document.Charts[0].Series[1].Color" into
// "charts[0].series[1].color".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func kindList() string {
	names := make([]string, len(chart.Kinds))
	for i, k := range chart.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
