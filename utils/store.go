package utils

import "github.com/JonFRutan/Orbital/database"

var store *database.Store

func SetStore(s *database.Store) {
	store = s
}

func GetStore() *database.Store {
	return store
}
