package media

import (
	"testing"

	"github.com/anonto42/car-blog/backend/internal/models"
)

func TestCarImage(t *testing.T) {
	cases := []struct {
		name string
		car  models.Car
		want string
	}{
		{"model keyword wins over brand", models.Car{Brand: "Ford", Model: "Mustang GT"}, modelImages[0].image},
		{"porsche model", models.Car{Brand: "Porsche", Model: "911 Carrera"}, modelImages[1].image},
		{"truck model", models.Car{Brand: "Dodge", Model: "Ram 1500"}, modelImages[2].image},
		{"brand table", models.Car{Brand: "BMW", Model: "X5"}, brandImages["bmw"]},
		{"brand case", models.Car{Brand: "Land Rover", Model: "Discovery"}, brandImages["land rover"]},
		{"unknown brand", models.Car{Brand: "Saab", Model: "9-3"}, fallbackCarImage},
	}

	for _, tc := range cases {
		car := tc.car
		if got := CarImage(&car, 0); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCarImageWithoutCarIsDeterministic(t *testing.T) {
	if CarImage(nil, 3) != CarImage(nil, 3) {
		t.Fatal("expected same image for same seed")
	}
	if CarImage(nil, 3) != defaultImages[3] {
		t.Fatalf("expected default image 3, got %q", CarImage(nil, 3))
	}
	if DefaultImage(-1) != defaultImages[4] {
		t.Fatalf("negative seeds must wrap, got %q", DefaultImage(-1))
	}
}

func TestHeroImage(t *testing.T) {
	if HeroImage(7) != heroImages[2] {
		t.Fatalf("expected hero image 2 for post 7, got %q", HeroImage(7))
	}
}

func TestUserAvatar(t *testing.T) {
	if UserAvatar(nil) != defaultAvatar {
		t.Fatal("expected default avatar for nil user")
	}
	if got := UserAvatar(&models.User{ID: 13}); got != avatars[3] {
		t.Fatalf("expected avatar 3, got %q", got)
	}
}

func TestAllowed(t *testing.T) {
	domains := []string{"images.unsplash.com", "upload.wikimedia.org"}

	if !Allowed(HeroImage(1), domains) {
		t.Error("expected unsplash image to be allowed")
	}
	if Allowed("https://evil.example.com/x.jpg", domains) {
		t.Error("expected foreign host to be rejected")
	}
	if Allowed("not a url", domains) {
		t.Error("expected relative junk to be rejected")
	}
	if Filter("https://evil.example.com/x.jpg", domains) != "" {
		t.Error("expected Filter to blank disallowed hosts")
	}
	if Filter("https://evil.example.com/x.jpg", nil) == "" {
		t.Error("expected empty allowlist to accept everything")
	}
}
