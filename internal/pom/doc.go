// Package pom reads Maven build descriptors (pom.xml) into a structured
// model. It exposes project coordinates, the parent reference, declared
// modules and build path overrides; it performs no interpolation or
// inheritance beyond what the file itself states.
package pom
