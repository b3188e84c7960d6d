package catalog

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"evdealer/models"
)

// ParseFilterSpec 由查詢參數建立 FilterSpec
//
//	q, minPrice, maxPrice, minRange, maxRange, minPower, maxPower,
//	minSpeed, maxSpeed, minAccel, maxAccel, batteryType, seats,
//	drivetrain, releaseStatus, colors=a,b, safety=a,b, sort, order
func ParseFilterSpec(values url.Values) (FilterSpec, error) {
	spec := FilterSpec{
		Search:        values.Get("q"),
		BatteryType:   values.Get("batteryType"),
		Drivetrain:    values.Get("drivetrain"),
		ReleaseStatus: values.Get("releaseStatus"),
	}

	ranges := []struct {
		target   *Range
		min, max string
	}{
		{&spec.Price, "minPrice", "maxPrice"},
		{&spec.RangeKm, "minRange", "maxRange"},
		{&spec.MotorPower, "minPower", "maxPower"},
		{&spec.TopSpeed, "minSpeed", "maxSpeed"},
		{&spec.Acceleration, "minAccel", "maxAccel"},
	}
	for _, r := range ranges {
		var err error
		if r.target.Min, err = parseBound(values, r.min); err != nil {
			return FilterSpec{}, err
		}
		if r.target.Max, err = parseBound(values, r.max); err != nil {
			return FilterSpec{}, err
		}
	}

	if seats := values.Get("seats"); seats != "" {
		n, err := strconv.Atoi(seats)
		if err != nil || n <= 0 {
			return FilterSpec{}, fmt.Errorf("seats must be a positive integer: %q", seats)
		}
		spec.SeatingCapacity = models.Int(n)
	}

	spec.Colors = splitList(values.Get("colors"))
	spec.SafetyFeatures = splitList(values.Get("safety"))

	spec.Sort = SortKey(values.Get("sort"))
	if !spec.Sort.Valid() {
		return FilterSpec{}, fmt.Errorf("unsupported sort key: %q", spec.Sort)
	}
	switch order := Direction(strings.ToLower(values.Get("order"))); order {
	case "", Asc:
		spec.Order = Asc
	case Desc:
		spec.Order = Desc
	default:
		return FilterSpec{}, fmt.Errorf("order must be 'asc' or 'desc': %q", order)
	}

	return spec, nil
}

func parseBound(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s must be a number: %q", name, raw)
	}
	return &f, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
