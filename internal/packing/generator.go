package packing

import (
	"math"
	"slices"
	"strings"
)

// MaxScaledQuantity caps any quantity produced by duration scaling.
const MaxScaledQuantity = 10

// Generate merges the rule tables for the given profile into a deduplicated
// packing list. It is a pure function of the profile and is safe to call
// concurrently.
func Generate(p Profile) []Item {
	season := strings.ToLower(p.Season)
	tripType := strings.ToLower(p.TripType)
	destination := strings.ToLower(p.Destination)

	items := slices.Clone(baseItems)
	items = append(items, seasonItems[season]...)
	items = append(items, tripTypeItems[tripType]...)
	items = append(items, destinationItems(destination)...)

	for _, activity := range p.Activities {
		items = append(items, activityItems[strings.ToLower(activity)]...)
	}
	if p.Gender != "" {
		items = append(items, genderItems[strings.ToLower(p.Gender)]...)
	}
	if p.AgeGroup != "" {
		items = append(items, ageItems[strings.ToLower(p.AgeGroup)]...)
	}

	bucket := BucketFor(p.Duration)
	scale(items, bucket)
	if bucket == BucketExtended {
		// added after scaling, so it always carries quantity 1
		items = append(items, laundrySoap)
	}

	if strings.Contains(season, "rainy") || strings.Contains(season, "monsoon") {
		items = append(items, seasonItems["rainy"]...)
	}
	if strings.Contains(season, "tropical") || containsAny(destination, tropicalDestinations) {
		items = append(items, seasonItems["tropical"]...)
	}

	if tripType == "business" && hasPresentation(p.Activities) {
		items = append(items, presentationItems...)
	}

	return dedupe(items)
}

// destinationItems returns the items of the first declared destination whose
// key occurs in destination, or the generic fallback.
func destinationItems(destination string) []Item {
	for _, rule := range destinationRules {
		if strings.Contains(destination, rule.key) {
			return rule.items
		}
	}
	return genericDestinationItems
}

// scale adjusts quantities in place. items must already be a private copy.
func scale(items []Item, bucket Bucket) {
	for i := range items {
		factors, ok := durationMultipliers[items[i].Category]
		if !ok || items[i].Essential {
			continue
		}
		scaled := int(math.RoundToEven(float64(items[i].Quantity) * factors[bucket]))
		items[i].Quantity = min(scaled, MaxScaledQuantity)
	}
}

// dedupe keeps one item per name at the position of its first occurrence.
// A later duplicate replaces the kept one when it has a strictly higher
// quantity or is essential while the kept one is not.
func dedupe(items []Item) []Item {
	index := make(map[string]int, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		pos, seen := index[it.Name]
		if !seen {
			index[it.Name] = len(out)
			out = append(out, it)
			continue
		}
		kept := out[pos]
		if it.Quantity > kept.Quantity || (it.Essential && !kept.Essential) {
			out[pos] = it
		}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	return slices.ContainsFunc(subs, func(sub string) bool {
		return strings.Contains(s, sub)
	})
}

func hasPresentation(activities []string) bool {
	return slices.ContainsFunc(activities, func(a string) bool {
		return strings.Contains(strings.ToLower(a), "presentation")
	})
}
