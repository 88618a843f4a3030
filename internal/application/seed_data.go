package application

import "github.com/teslo-shop/catalog-api/internal/domain/entity"

type seedUser struct {
	Email    string
	Password string
	FullName string
	Roles    []entity.Role
}

var seedUsers = []seedUser{
	{
		Email:    "admin@teslo.com",
		Password: "Abc12345",
		FullName: "Admin User",
		Roles:    []entity.Role{entity.RoleAdmin, entity.RoleSuperUser},
	},
	{
		Email:    "eve@teslo.com",
		Password: "Abc12345",
		FullName: "Eve Customer",
		Roles:    []entity.Role{entity.RoleUser},
	},
}

var seedProducts = []CreateProductInput{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Price:       75,
		Description: "Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior.",
		Stock:       7,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Price:       200,
		Description: "The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons.",
		Stock:       5,
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Price:       225,
		Description: "The cropped puffer jacket features a uniquely cropped silhouette for the perfect, modern style.",
		Stock:       85,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"jacket"},
		Images:      []string{"1654219-00-A_0_2000.jpg", "1654219-00-A_1.jpg"},
	},
	{
		Title:       "Women's Blazer",
		Price:       120,
		Description: "A tailored blazer with a relaxed drape.",
		Stock:       10,
		Sizes:       []string{"S", "M", "L"},
		Gender:      "women",
		Tags:        []string{"blazer"},
		Images:      []string{"blazer_0_2000.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Price:       65,
		Description: "Wear your love for Tesla Cyberquad with the Kids Cyberquad Bomber Jacket.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
}
