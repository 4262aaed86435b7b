package redis

import "fmt"

// Key prefix for all stored data
const keyPrefix = "guavagrams"

// dictionaryKey returns the Redis key for a named vocabulary's word set
func dictionaryKey(name string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, name)
}

// dictionaryIndexKey returns the Redis key for the SET of known vocabulary names
func dictionaryIndexKey() string {
	return fmt.Sprintf("%s:idx:dictionaries", keyPrefix)
}

// scoreTableKey returns the Redis key for a score table HASH
func scoreTableKey(name string) string {
	return fmt.Sprintf("%s:score_table:%s", keyPrefix, name)
}
