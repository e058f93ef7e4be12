package pbx

// sampleManifest mirrors the layout Xcode writes: flat record tables
// bounded by Begin/End markers, groups and build phases as objects with
// member lists, sections in alphabetical order. Trimmed to the regions
// this package touches plus enough surrounding structure to exercise
// anchoring. Note that "/* Services */" and "/* Sources */" both appear
// as references well before the objects they name are defined.
const sampleManifest = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		2152FB042600AC8F00CF470E /* iOSApp.swift in Sources */ = {isa = PBXBuildFile; fileRef = 2152FB032600AC8F00CF470E /* iOSApp.swift */; };
		7555FF7B242A565900829871 /* ContentView.swift in Sources */ = {isa = PBXBuildFile; fileRef = 7555FF7A242A565900829871 /* ContentView.swift */; };
		058557D7273AAEEB004C7B11 /* Assets.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = 058557D6273AAEEB004C7B11 /* Assets.xcassets */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		058557D6273AAEEB004C7B11 /* Assets.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = Assets.xcassets; sourceTree = "<group>"; };
		2152FB032600AC8F00CF470E /* iOSApp.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = iOSApp.swift; sourceTree = "<group>"; };
		7555FF7A242A565900829871 /* ContentView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = ContentView.swift; sourceTree = "<group>"; };
		7555FF8C242A565B00829871 /* iosApp.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = iosApp.app; sourceTree = BUILT_PRODUCTS_DIR; };
		AB1DB47929225F7C00F7AF9C /* Logger.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; name = Logger.swift; path = Services/Logger.swift; sourceTree = "<group>"; };
		AB3632DC29227652001CCB65 /* Analytics.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; name = Analytics.swift; path = Services/Analytics.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		7555FF72242A565900829871 = {
			isa = PBXGroup;
			children = (
				AB1DB47829225F7C00F7AF9C /* Services */,
				7555FF7D242A565900829871 /* iosApp */,
				7555FF8D242A565B00829871 /* Products */,
			);
			sourceTree = "<group>";
		};
		7555FF7D242A565900829871 /* iosApp */ = {
			isa = PBXGroup;
			children = (
				2152FB032600AC8F00CF470E /* iOSApp.swift */,
				7555FF7A242A565900829871 /* ContentView.swift */,
				058557D6273AAEEB004C7B11 /* Assets.xcassets */,
			);
			path = iosApp;
			sourceTree = "<group>";
		};
		7555FF8D242A565B00829871 /* Products */ = {
			isa = PBXGroup;
			children = (
				7555FF8C242A565B00829871 /* iosApp.app */,
			);
			name = Products;
			sourceTree = "<group>";
		};
		AB1DB47829225F7C00F7AF9C /* Services */ = {
			isa = PBXGroup;
			children = (
				AB1DB47929225F7C00F7AF9C /* Logger.swift */,
				AB3632DC29227652001CCB65 /* Analytics.swift */,
			);
			name = Services;
			path = iosApp/Services;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXNativeTarget section */
		7555FF79242A565900829871 /* iosApp */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 7555FF9F242A565B00829871 /* Build configuration list for PBXNativeTarget "iosApp" */;
			buildPhases = (
				F85CF1652B0185310055F2BB /* Compile Kotlin Framework */,
				7555FF75242A565900829871 /* Sources */,
				7555FF77242A565900829871 /* Resources */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = iosApp;
			productName = iosApp;
			productReference = 7555FF8C242A565B00829871 /* iosApp.app */;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		7555FF71242A565900829871 /* Project object */ = {
			isa = PBXProject;
			buildConfigurationList = 7555FF74242A565900829871 /* Build configuration list for PBXProject "iosApp" */;
			compatibilityVersion = "Xcode 14.0";
			mainGroup = 7555FF72242A565900829871;
			productRefGroup = 7555FF8D242A565B00829871 /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				7555FF79242A565900829871 /* iosApp */,
			);
		};
/* End PBXProject section */

/* Begin PBXResourcesBuildPhase section */
		7555FF77242A565900829871 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				058557D7273AAEEB004C7B11 /* Assets.xcassets in Resources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		7555FF75242A565900829871 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				7555FF7B242A565900829871 /* ContentView.swift in Sources */,
				2152FB042600AC8F00CF470E /* iOSApp.swift in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */
	};
	rootObject = 7555FF71242A565900829871 /* Project object */;
}
`
