package content

// EffectiveDartID is the document ID of the built-in guide.
const EffectiveDartID = "effective-dart"

// EffectiveDart returns the built-in Effective Dart style guide.
func EffectiveDart() Document {
	return NewDocument(EffectiveDartID,
		NewSection("Style",
			Text("A surprisingly important part of good code is good style. Consistent naming, ordering, and formatting helps code that is the same look the same. It takes advantage of the powerful pattern-matching hardware most of us have in our ocular systems."),
			Text("DO name types using UpperCamelCase. Classes, enum types, typedefs, and type parameters should capitalize the first letter of each word, including the first word, and use no separators."),
			Code("class SliderMenu { ... }\n\nclass HttpRequest { ... }\n\ntypedef Predicate<T> = bool Function(T value);"),
			Text("DO name packages, directories, and source files using lowercase_with_underscores."),
			Code("library peg_parser.source_scanner;\n\nimport 'file_system.dart';\nimport 'slider_menu.dart';"),
			Text("DO name other identifiers using lowerCamelCase. Class members, top-level definitions, variables, parameters, and named parameters should capitalize the first letter of each word except the first word."),
			Code("var count = 3;\n\nHttpRequest httpRequest;\n\nvoid align(bool clearItems) {\n  // ...\n}"),
			Text("DO place dart: imports before other imports, and package: imports before relative imports. Sort each section alphabetically."),
			Code("import 'dart:async';\nimport 'dart:html';\n\nimport 'package:bar/bar.dart';\nimport 'package:foo/foo.dart';\n\nimport 'util.dart';"),
			Text("DO format your code using dart format. AVOID lines longer than 80 characters. DO use curly braces for all flow control statements."),
		),
		NewSection("Documentation",
			Text("It's easy to think your code is obvious today without realizing how much you rely on context already in your head. Good comments and documentation are a gift to the people who will read your code later, including future you."),
			Text("DO format comments like sentences. Capitalize the first word unless it's a case-sensitive identifier, and end it with a period."),
			Code("// Not if anything comes before it.\nif (_chunks.isNotEmpty) return false;"),
			Text("DO use /// doc comments to document members and types. PREFER starting doc comments with a single-sentence summary, separated from the rest of the text by a blank line."),
			Code("/// Deletes the file at [path].\n///\n/// Throws an [IOError] if the file could not be found. Throws a\n/// [PermissionError] if the file is present but could not be deleted.\nvoid delete(String path) {\n  ...\n}"),
			Text("DO use square brackets in doc comments to refer to in-scope identifiers. AVOID redundancy with the surrounding context."),
		),
		NewSection("Usage",
			Text("These guidelines cover the parts of Dart code you write most often: the bodies of functions, how collections are built, and how variables and members are used."),
			Text("DO use collection literals when possible. Use the spread and collection-if forms to build collections instead of calling add in a loop."),
			Code("var points = <Point>[];\nvar addresses = <String, Address>{};\nvar counts = <int>{};\n\nvar arguments = [\n  ...options,\n  command,\n  ...?modeFlags,\n  for (var path in filePaths)\n    if (path.endsWith('.dart')) path.replaceAll('.dart', '.js'),\n];"),
			Text("DON'T use .length to see if a collection is empty. Use isEmpty and isNotEmpty instead."),
			Code("if (lunchBox.isEmpty) return 'so hungry...';\nif (words.isNotEmpty) return words.join(' ');"),
			Text("DO use ?? to convert null to a boolean value. PREFER using interpolation to compose strings and values. DON'T use new."),
			Code("'Hello, $name! You are ${year - birth} years old.';"),
		),
		NewSection("Design",
			Text("Design is the part of the guide about writing consistent, usable APIs for libraries: the names of things, the shapes of types, and the signatures of members."),
			Text("DO use terms consistently. PREFER putting the most descriptive noun last. CONSIDER making the code read like a sentence."),
			Code("// \"If errors is empty...\"\nif (errors.isEmpty) ...\n\n// \"Hey, subscription, cancel!\"\nsubscription.cancel();"),
			Text("PREFER making declarations private. A public declaration is a promise to every caller. Start members with an underscore until there is a reason to expose them."),
			Text("AVOID defining a one-member abstract class when a simple function will do. DO use getters for operations that conceptually access properties."),
			Code("typedef Predicate<E> = bool Function(E element);\n\nrectangle.area;\ncollection.isEmpty;\nbutton.canShow;"),
			Text("DO annotate when Dart infers the wrong type, and PREFER type annotating public fields and top-level variables if the type isn't obvious."),
		),
	)
}
