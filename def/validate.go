package def

// Convenience method that runs all situation validation.
// Modifies the situation.
func ValidateAll(sit *Situation) {
	ValidateBasic(sit)
	ValidateMembership(sit)
}

// Checks a situation for irrecoverable errors.
// Will NOT modify the situation, with the exception of instantiating nil maps.
func ValidateBasic(sit *Situation) {
	if sit.Persons == nil {
		sit.Persons = map[string]Entity{}
	}
	if sit.Households == nil {
		sit.Households = map[string]Household{}
	}
	if len(sit.Persons) < 1 && len(sit.Households) < 1 {
		panic(ValidationError.New("situation needs at least one person or household"))
	}
	for name, ent := range sit.Persons {
		if name == "" {
			panic(ValidationError.New("person names cannot be empty"))
		}
		if ent == nil {
			sit.Persons[name] = Entity{}
		}
	}
	for name, hh := range sit.Households {
		if name == "" {
			panic(ValidationError.New("household names cannot be empty"))
		}
		if hh.Variables == nil {
			hh.Variables = Entity{}
			sit.Households[name] = hh
		}
	}
}

// Checks that household membership lists are consistent: every member
// names an existing person, and no person is claimed by two households.
func ValidateMembership(sit *Situation) {
	claimed := map[string]string{} // person -> household that claimed them
	for hhName, hh := range sit.Households {
		for _, member := range hh.Members {
			if _, ok := sit.Persons[member]; !ok {
				panic(ValidationError.New("household %q lists member %q, but no such person is declared", hhName, member))
			}
			if prev, dup := claimed[member]; dup {
				panic(ValidationError.New("person %q is a member of both %q and %q", member, prev, hhName))
			}
			claimed[member] = hhName
		}
	}
}
