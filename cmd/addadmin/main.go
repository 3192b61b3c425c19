package main

import (
	"flag"
	"fmt"
	"os"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
	"vidyalaya/app/models"
	"vidyalaya/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "login email for the new account")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "account role: admin, accountant or clerk")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		flag.Usage()
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      *role,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
