package exporter

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/shopspring/decimal"
)

const ReportHeader = "Dimensions of Selected Objects:"

// Axis names printed next to each label. Width is X, height is Z and depth is Y, following the
// Z-up convention of the scene.
const (
	WidthAxis  = "X"
	HeightAxis = "Z"
	DepthAxis  = "Y"
)

// Formats a scene dimension converted by the given scale with exactly two decimal places. The
// scale is applied in float64 and the exact binary value of the product is rounded, ties to even,
// so 2.675 m prints as 2.67 because the float is slightly below 2.675.
func FormatDimension(value float64, scale UnitScale) string {
	product := value * float64(scale)
	if math.IsNaN(product) || math.IsInf(product, 0) {
		return fmt.Sprintf("%.2f", product)
	}
	return exactDecimal(product).RoundBank(2).StringFixed(2)
}

// Returns the decimal holding exactly the binary value of a finite float64.
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mantissa := big.NewInt(int64(math.Ldexp(frac, 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mantissa.Lsh(mantissa, uint(exp)), 0)
	}
	// m * 2^-k == m * 5^k * 10^-k
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mantissa.Mul(mantissa, five), int32(exp))
}

// Renders the text report for the given meshes. Objects are rendered in the given order, the
// caller is responsible for filtering out non mesh objects.
func FormatReport(meshes []*data.SceneObject, settings *ExportSettings) string {
	var sb strings.Builder
	sb.WriteString(ReportHeader)
	sb.WriteString("\n\n")

	for _, obj := range meshes {
		sb.WriteString(strings.ToValidUTF8(obj.Name, "\uFFFD"))
		sb.WriteString(":\n")
		if settings.IncludeWidth {
			writeDimensionLine(&sb, settings.LabelWidth, WidthAxis, obj.Dimensions.X, settings.UnitScale)
		}
		if settings.IncludeHeight {
			writeDimensionLine(&sb, settings.LabelHeight, HeightAxis, obj.Dimensions.Z, settings.UnitScale)
		}
		if settings.IncludeDepth {
			writeDimensionLine(&sb, settings.LabelDepth, DepthAxis, obj.Dimensions.Y, settings.UnitScale)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeDimensionLine(sb *strings.Builder, label string, axis string, value float64, scale UnitScale) {
	sb.WriteString("  ")
	sb.WriteString(strings.ToValidUTF8(label, "\uFFFD"))
	sb.WriteString(" (")
	sb.WriteString(axis)
	sb.WriteString("): ")
	sb.WriteString(FormatDimension(value, scale))
	sb.WriteString("\n")
}
