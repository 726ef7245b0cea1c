// Package catalog classifies, searches and filters cars.
//
// Classification is table driven: every category owns a list of rules, and a
// car belongs to a category when any of its rules matches. Matching is case
// insensitive and categories are not exclusive.
package catalog

import (
	"strings"

	"github.com/anonto42/car-blog/backend/internal/models"
)

// Category is a car type label
type Category string

const (
	All      Category = "All"
	Electric Category = "Electric"
	SUV      Category = "SUV"
	Luxury   Category = "Luxury"
	Sports   Category = "Sports"
	Hybrid   Category = "Hybrid"
	Sedan    Category = "Sedan"
	Truck    Category = "Truck"
)

// Categories lists the classified categories in display order. All is implicit.
var Categories = []Category{Electric, SUV, Luxury, Sports, Hybrid, Sedan, Truck}

// Names returns All followed by every category, as strings
func Names() []string {
	names := make([]string, 0, len(Categories)+1)
	names = append(names, string(All))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}

// Valid reports whether name is All or a known category
func Valid(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Field selects the car attribute a rule inspects
type Field int

const (
	BrandField Field = iota
	ModelField
)

// Matcher compares a lower-cased attribute with a lower-cased keyword
type Matcher func(value, keyword string) bool

var (
	Equals   Matcher = func(value, keyword string) bool { return value == keyword }
	Contains Matcher = strings.Contains
)

// Rule matches a car when the selected field matches any keyword
type Rule struct {
	Field    Field
	Match    Matcher
	Keywords []string
}

func (r Rule) matches(brand, model string) bool {
	value := model
	if r.Field == BrandField {
		value = brand
	}
	for _, k := range r.Keywords {
		if r.Match(value, k) {
			return true
		}
	}
	return false
}

func brandIs(keywords ...string) Rule {
	return Rule{Field: BrandField, Match: Equals, Keywords: keywords}
}

func modelHas(keywords ...string) Rule {
	return Rule{Field: ModelField, Match: Contains, Keywords: keywords}
}

// Rules is the classification table. Keywords are lower case.
var Rules = map[Category][]Rule{
	Electric: {
		modelHas("electric", "ev", "e-", "model s", "model 3", "model x", "model y",
			"leaf", "bolt", "i3", "i8", "etron", "taycan", "mach-e"),
		brandIs("tesla"),
	},
	SUV: {
		modelHas("suv", "suburban", "tahoe", "yukon", "escalade", "navigator",
			"expedition", "explorer", "pilot", "highlander", "pathfinder", "armada",
			"q7", "q5", "q3", "x5", "x3", "x6", "x7", "gx", "rx", "lx", "qx",
			"mdx", "rdx", "cx-", "forester", "outback", "ascent", "compass",
			"cherokee", "grand cherokee", "wrangler", "rogue", "murano", "santa fe",
			"tucson", "sorento", "sportage", "rav4", "cr-v", "escape", "edge",
			"bronco", "4runner", "sequoia", "land cruiser", "range rover",
			"discovery", "defender", "evoque"),
	},
	Luxury: {
		brandIs("mercedes-benz", "mercedes", "bmw", "audi", "lexus", "cadillac", "lincoln",
			"bentley", "rolls-royce", "maserati", "aston martin", "lamborghini", "ferrari",
			"porsche", "jaguar", "land rover", "infiniti", "acura", "maybach",
			"alfa romeo", "genesis"),
		modelHas("amg", "m series", "rs", "s-line", "quattro", "luxury", "premium"),
	},
	Sports: {
		modelHas("corvette", "mustang", "camaro", "challenger", "charger", "911",
			"boxster", "cayman", "gt-r", "370z", "350z", "supra", "rx-7", "rx-8",
			"miata", "viper", "gto", "firebird", "trans am", "z4", "slk", "sl-class",
			"amg", "m3", "m5", "m6", "s4", "s5", "rs", "type r", "sti", "evo", "nsx",
			"gt", "sport", "turbo", "coupe", "roadster", "convertible"),
		brandIs("ferrari", "lamborghini", "mclaren", "lotus", "alfa romeo"),
	},
	Hybrid: {
		modelHas("hybrid", "prius", "camry hybrid", "accord hybrid", "fusion hybrid",
			"escape hybrid", "highlander hybrid", "rx hybrid", "gs hybrid", "ls hybrid",
			"insight", "cr-z", "volt", "ioniq", "niro", "rav4 hybrid"),
	},
	Sedan: {
		modelHas("sedan", "camry", "accord", "civic", "corolla", "altima", "sentra",
			"maxima", "impala", "malibu", "fusion", "focus", "jetta", "passat",
			"a3", "a4", "a6", "a8", "3 series", "5 series", "7 series",
			"c-class", "e-class", "s-class", "is", "es", "gs", "ls", "cts", "ats",
			"xts", "continental", "mkz", "legacy", "impreza", "wrx", "sonata",
			"elantra", "genesis", "optima", "forte", "rio", "avalon", "taurus",
			"lacrosse", "regal", "200", "300"),
	},
	Truck: {
		modelHas("f-150", "f-250", "f-350", "silverado", "sierra", "ram", "tundra",
			"tacoma", "frontier", "titan", "ridgeline", "colorado", "canyon", "ranger",
			"gladiator", "1500", "2500", "3500", "truck", "pickup"),
	},
}

// Classify returns the categories car belongs to, in display order, without All
func Classify(car models.Car) []Category {
	brand := strings.ToLower(car.Brand)
	model := strings.ToLower(car.Model)

	var matched []Category
	for _, category := range Categories {
		for _, rule := range Rules[category] {
			if rule.matches(brand, model) {
				matched = append(matched, category)
				break
			}
		}
	}
	return matched
}

// Categorize groups cars by category. Every category key is present; a car may appear under several.
func Categorize(cars []models.Car) map[Category][]models.Car {
	groups := make(map[Category][]models.Car, len(Categories))
	for _, category := range Categories {
		groups[category] = []models.Car{}
	}
	for _, car := range cars {
		for _, category := range Classify(car) {
			groups[category] = append(groups[category], car)
		}
	}
	return groups
}
