package distribution

import (
	"fmt"

	"yabaMarket/domain"
)

type productOpt func(*domain.Product)

func withCategory(category string) productOpt {
	return func(p *domain.Product) { p.Category = category }
}

func withSubcategory(sub string) productOpt {
	return func(p *domain.Product) { p.Subcategory = sub }
}

func withName(name string) productOpt {
	return func(p *domain.Product) { p.Name = name }
}

func withDescription(desc string) productOpt {
	return func(p *domain.Product) { p.Description = desc }
}

func withPrice(price int64) productOpt {
	return func(p *domain.Product) { p.Price = price }
}

func withPromo(promo int64) productOpt {
	return func(p *domain.Product) { p.PromoPrice = &promo }
}

func withStock(stock int64) productOpt {
	return func(p *domain.Product) { p.Stock = stock }
}

func withImages(n int) productOpt {
	return func(p *domain.Product) {
		p.Images = nil
		for i := 0; i < n; i++ {
			p.Images = append(p.Images, fmt.Sprintf("https://cdn.example.com/%s/%d.jpg", p.ID, i))
		}
	}
}

func withVideo() productOpt {
	return func(p *domain.Product) {
		url := "https://cdn.example.com/" + p.ID + ".mp4"
		p.VideoURL = &url
	}
}

func yaBaBoss() productOpt {
	return func(p *domain.Product) { p.IsYaBaBoss = true }
}

func newProduct(id string, opts ...productOpt) domain.Product {
	p := domain.Product{ID: id, Name: "Produit " + id, Price: 1000}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertUniqueIDs(products []domain.Product) (string, bool) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return p.ID, false
		}
		seen[p.ID] = struct{}{}
	}
	return "", true
}
