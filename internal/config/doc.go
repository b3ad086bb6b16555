// Package config resolves the settings a command runs with.
//
// Values come from three places, lowest authority first:
//
//  1. the selected profile in the profile store (or the built-in demo
//     credentials when the profile is named "demo" and not stored)
//  2. --token, --database and --environment
//  3. TMO_API_TOKEN and TMO_DATABASE, consulted only for values still empty
//
// Resolution either returns complete Settings or fails with a validation
// error that tells the user how to supply what is missing.
//
// Environment variables are read through an EnvAccessor. OSEnv layers the
// process environment over an optional .env file; MapEnv serves tests.
//
// Environment names are matched against a fixed alias table (us, usa, can,
// canada, aus, australia). Anything else resolves to US.
package config
