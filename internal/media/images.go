// Package media picks images and avatars for cars, posts and users.
package media

import (
	"net/url"
	"strings"

	"github.com/anonto42/car-blog/backend/internal/models"
)

const fallbackCarImage = "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=600&h=400&fit=crop"

var defaultImages = []string{
	"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1542362567-b07e54358753?w=600&h=400&fit=crop",
	"https://images.unsplash.com/photo-1553440569-bcc63803a83d?w=600&h=400&fit=crop",
}

var heroImages = []string{
	"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=1200&h=600&fit=crop",
	"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=1200&h=600&fit=crop",
	"https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=1200&h=600&fit=crop",
	"https://images.unsplash.com/photo-1542362567-b07e54358753?w=1200&h=600&fit=crop",
	"https://images.unsplash.com/photo-1553440569-bcc63803a83d?w=1200&h=600&fit=crop",
}

// Model keywords take precedence over the brand table
var modelImages = []struct {
	keywords []string
	image    string
}{
	{[]string{"corvette", "mustang", "camaro"}, "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=600&h=400&fit=crop"},
	{[]string{"911", "boxster", "cayman"}, "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=600&h=400&fit=crop"},
	{[]string{"f-150", "silverado", "ram"}, "https://images.unsplash.com/photo-1553440569-bcc63803a83d?w=600&h=400&fit=crop"},
}

var brandImages = map[string]string{
	"bmw":           "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=600&h=400&fit=crop",
	"mercedes-benz": "https://images.unsplash.com/photo-1592309905620-e5b59f6dcb98?w=600&h=400&fit=crop",
	"mercedes":      "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=600&h=400&fit=crop",
	"audi":          "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=600&h=400&fit=crop",
	"tesla":         "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=600&h=400&fit=crop",
	"porsche":       "https://images.unsplash.com/photo-1580274455191-1c62238fa333?w=600&h=400&fit=crop",
	"ferrari":       "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=600&h=400&fit=crop",
	"lamborghini":   "https://images.unsplash.com/photo-1635942185703-65cbbedb555a?w=600&h=400&fit=crop",
	"ford":          "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=600&h=400&fit=crop",
	"chevrolet":     "https://images.unsplash.com/photo-1504078151140-0d07249b8a9a?w=600&h=400&fit=crop",
	"toyota":        "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=600&h=400&fit=crop",
	"honda":         "https://images.unsplash.com/photo-1578659258511-4a4e7dee7344?w=600&h=400&fit=crop",
	"nissan":        "https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=600&h=400&fit=crop",
	"lexus":         "https://images.unsplash.com/photo-1577496549804-8b05f1f67338?w=600&h=400&fit=crop",
	"cadillac":      "https://images.unsplash.com/photo-1589148938909-4d241c91ee52?w=600&h=400&fit=crop",
	"jaguar":        "https://images.unsplash.com/photo-1592929881470-65c6db486987?w=600&h=400&fit=crop",
	"land rover":    "https://images.unsplash.com/photo-1610625679301-38642e0a60bd?w=600&h=400&fit=crop",
	"volkswagen":    "https://images.unsplash.com/photo-1605475300318-c377291697ac?w=600&h=400&fit=crop",
	"hyundai":       "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=600&h=400&fit=crop",
	"kia":           "https://images.unsplash.com/photo-1688893287874-ac7fbd686c24?w=600&h=400&fit=crop",
	"mazda":         "https://images.unsplash.com/photo-1617814076367-b759c7d7e738?w=600&h=400&fit=crop",
	"subaru":        "https://images.unsplash.com/photo-1636074641063-1c2152f1b31e?w=600&h=400&fit=crop",
	"infiniti":      "https://images.unsplash.com/photo-1584592839429-197ba37a7f3c?w=600&h=400&fit=crop",
	"acura":         "https://images.unsplash.com/photo-1613288833656-86d453c0298f?w=600&h=400&fit=crop",
	"alfa romeo":    "https://images.unsplash.com/photo-1729349385457-dee64f37ad31?w=600&h=400&fit=crop",
}

// CarImage picks an image for car by model keyword, then by brand.
// Without a car the default image for seed is used.
func CarImage(car *models.Car, seed int) string {
	if car == nil {
		return DefaultImage(seed)
	}

	model := strings.ToLower(car.Model)
	for _, m := range modelImages {
		for _, k := range m.keywords {
			if strings.Contains(model, k) {
				return m.image
			}
		}
	}

	if img, ok := brandImages[strings.ToLower(car.Brand)]; ok {
		return img
	}
	return fallbackCarImage
}

// DefaultImage returns one of the generic car images, chosen by seed
func DefaultImage(seed int) string {
	return defaultImages[index(seed, len(defaultImages))]
}

// HeroImage returns the wide header image of a post
func HeroImage(postID int) string {
	return heroImages[index(postID, len(heroImages))]
}

// Allowed reports whether rawURL is served from one of the allowed image hosts
func Allowed(rawURL string, domains []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		if host == strings.ToLower(d) {
			return true
		}
	}
	return false
}

// Filter returns rawURL when its host is allowed and "" otherwise.
// An empty allowlist accepts every URL.
func Filter(rawURL string, domains []string) string {
	if len(domains) == 0 || Allowed(rawURL, domains) {
		return rawURL
	}
	return ""
}

func index(n, size int) int {
	return ((n % size) + size) % size
}
